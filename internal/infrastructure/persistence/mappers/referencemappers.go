package mappers

import (
	"github.com/reqtrack/reqtrack/internal/domain/customer"
	"github.com/reqtrack/reqtrack/internal/domain/tag"
	tagvo "github.com/reqtrack/reqtrack/internal/domain/tag/valueobjects"
	"github.com/reqtrack/reqtrack/internal/domain/user"
	"github.com/reqtrack/reqtrack/internal/infrastructure/persistence/models"
	"github.com/reqtrack/reqtrack/internal/shared/authorization"
	"github.com/reqtrack/reqtrack/internal/shared/biztime"
)

func UserToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func UserToDomain(m *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(m.ID, m.Name, m.Email, m.PasswordHash,
		authorization.UserRole(m.Role),
		biztime.FromUnixMilli(m.CreatedAt), biztime.FromUnixMilli(m.UpdatedAt))
}

func CustomerToModel(c *customer.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:        c.ID(),
		Name:      c.Name(),
		Company:   c.Company(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		CreatedAt: c.CreatedAt().UnixMilli(),
		UpdatedAt: c.UpdatedAt().UnixMilli(),
	}
}

func CustomerToDomain(m *models.CustomerModel) (*customer.Customer, error) {
	return customer.ReconstructCustomer(m.ID, m.Name, m.Company, m.Email, m.Phone,
		biztime.FromUnixMilli(m.CreatedAt), biztime.FromUnixMilli(m.UpdatedAt))
}

func TagToModel(t *tag.Tag) *models.TagModel {
	return &models.TagModel{
		ID:        t.ID(),
		Name:      t.Name(),
		Color:     t.Color(),
		Category:  t.Category().String(),
		CreatedAt: t.CreatedAt().UnixMilli(),
		UpdatedAt: t.UpdatedAt().UnixMilli(),
	}
}

func TagToDomain(m *models.TagModel) (*tag.Tag, error) {
	return tag.ReconstructTag(m.ID, m.Name, m.Color, tagvo.Category(m.Category),
		biztime.FromUnixMilli(m.CreatedAt), biztime.FromUnixMilli(m.UpdatedAt))
}
