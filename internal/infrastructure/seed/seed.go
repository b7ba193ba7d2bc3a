// Package seed loads demo users, customers and tags from a YAML file.
package seed

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/reqtrack/reqtrack/internal/domain/customer"
	"github.com/reqtrack/reqtrack/internal/domain/sharedvo"
	"github.com/reqtrack/reqtrack/internal/domain/tag"
	tagvo "github.com/reqtrack/reqtrack/internal/domain/tag/valueobjects"
	"github.com/reqtrack/reqtrack/internal/domain/user"
	"github.com/reqtrack/reqtrack/internal/shared/authorization"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

type File struct {
	Users     []UserSeed     `yaml:"users"`
	Customers []CustomerSeed `yaml:"customers"`
	Tags      []TagSeed      `yaml:"tags"`
}

type UserSeed struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type CustomerSeed struct {
	Name    string `yaml:"name"`
	Company string `yaml:"company"`
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`
}

type TagSeed struct {
	Name     string `yaml:"name"`
	Color    string `yaml:"color"`
	Category string `yaml:"category"`
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &f, nil
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Result counts the rows created; rows that already existed are skipped.
type Result struct {
	Users     int
	Customers int
	Tags      int
}

type Seeder struct {
	users     user.Repository
	customers customer.Repository
	tags      tag.Repository
	hasher    PasswordHasher
	logger    logger.Interface
}

func NewSeeder(users user.Repository, customers customer.Repository, tags tag.Repository, hasher PasswordHasher, log logger.Interface) *Seeder {
	return &Seeder{users: users, customers: customers, tags: tags, hasher: hasher, logger: log}
}

// Apply is idempotent: users and customers are matched by email, tags by name.
func (s *Seeder) Apply(ctx context.Context, f *File) (Result, error) {
	var res Result
	now := time.Now().UTC()

	for _, u := range f.Users {
		email, err := sharedvo.NormalizeEmail(u.Email)
		if err != nil {
			return res, fmt.Errorf("user %q: %w", u.Email, err)
		}
		exists, err := s.users.ExistsByEmail(ctx, email)
		if err != nil {
			return res, err
		}
		if exists {
			continue
		}
		role, err := authorization.ParseRole(u.Role)
		if err != nil {
			return res, fmt.Errorf("user %q: %w", u.Email, err)
		}
		hash, err := s.hasher.Hash(u.Password)
		if err != nil {
			return res, err
		}
		entity, err := user.NewUser(u.Name, email, hash, now)
		if err != nil {
			return res, fmt.Errorf("user %q: %w", u.Email, err)
		}
		if role.IsAdmin() {
			entity.PromoteToAdmin(now)
		}
		if err := s.users.Create(ctx, entity); err != nil {
			return res, err
		}
		res.Users++
	}

	for _, c := range f.Customers {
		email, err := sharedvo.NormalizeEmail(c.Email)
		if err != nil {
			return res, fmt.Errorf("customer %q: %w", c.Email, err)
		}
		exists, err := s.customers.ExistsByEmail(ctx, email, 0)
		if err != nil {
			return res, err
		}
		if exists {
			continue
		}
		entity, err := customer.NewCustomer(c.Name, c.Company, email, c.Phone, now)
		if err != nil {
			return res, fmt.Errorf("customer %q: %w", c.Email, err)
		}
		if err := s.customers.Create(ctx, entity); err != nil {
			return res, err
		}
		res.Customers++
	}

	for _, t := range f.Tags {
		exists, err := s.tags.ExistsByName(ctx, t.Name, 0)
		if err != nil {
			return res, err
		}
		if exists {
			continue
		}
		var category tagvo.Category
		if t.Category != "" {
			if category, err = tagvo.ParseCategory(t.Category); err != nil {
				return res, fmt.Errorf("tag %q: %w", t.Name, err)
			}
		}
		entity, err := tag.NewTag(t.Name, t.Color, category, now)
		if err != nil {
			return res, fmt.Errorf("tag %q: %w", t.Name, err)
		}
		if err := s.tags.Create(ctx, entity); err != nil {
			return res, err
		}
		res.Tags++
	}

	s.logger.Infow("seed applied", "users", res.Users, "customers", res.Customers, "tags", res.Tags)
	return res, nil
}
