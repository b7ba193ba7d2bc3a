package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/reqtrack/reqtrack/internal/domain/customer"
	"github.com/reqtrack/reqtrack/internal/infrastructure/persistence/mappers"
	"github.com/reqtrack/reqtrack/internal/infrastructure/persistence/models"
	"github.com/reqtrack/reqtrack/internal/shared/db"
	apperrors "github.com/reqtrack/reqtrack/internal/shared/errors"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

type CustomerRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCustomerRepository(db *gorm.DB, logger logger.Interface) *CustomerRepository {
	return &CustomerRepository{db: db, logger: logger}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	model := mappers.CustomerToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("Customer email already exists")
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}
	c.SetID(model.ID)
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	model := mappers.CustomerToModel(c)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.CustomerModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"name":       model.Name,
			"company":    model.Company,
			"email":      model.Email,
			"phone":      model.Phone,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("Customer email already exists")
		}
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}
	// RowsAffected can be 0 on mysql when nothing changed; callers load
	// the row first.
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.CustomerModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Customer not found")
	}
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model models.CustomerModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Customer not found")
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return mappers.CustomerToDomain(&model)
}

func (r *CustomerRepository) GetByIDs(ctx context.Context, ids []uint) ([]*customer.Customer, error) {
	if len(ids) == 0 {
		return []*customer.Customer{}, nil
	}
	var rows []models.CustomerModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}
	return mapAll(rows, mappers.CustomerToDomain)
}

func (r *CustomerRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.CustomerModel{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check customer email: %w", err)
	}
	return count > 0, nil
}

func (r *CustomerRepository) List(ctx context.Context, filter customer.ListFilter) ([]*customer.Customer, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.CustomerModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	query = query.Order("created_at DESC").Order("id DESC")
	if filter.PageSize > 0 {
		query = query.Scopes(db.Paginate(filter.Page, filter.PageSize))
	}

	var rows []models.CustomerModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}
	customers, err := mapAll(rows, mappers.CustomerToDomain)
	return customers, total, err
}

func (r *CustomerRepository) Search(ctx context.Context, term string) ([]*customer.Customer, error) {
	var rows []models.CustomerModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ContainsFold(term, "name", "company")).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	return mapAll(rows, mappers.CustomerToDomain)
}
