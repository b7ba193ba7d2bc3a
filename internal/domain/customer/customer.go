package customer

import (
	"fmt"
	"strings"
	"time"

	"github.com/reqtrack/reqtrack/internal/domain/sharedvo"
)

type Customer struct {
	id        uint
	name      string
	company   string
	email     string
	phone     string
	createdAt time.Time
	updatedAt time.Time
}

func NewCustomer(name, company, email, phone string, now time.Time) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(company) == "" {
		return nil, fmt.Errorf("company is required")
	}
	normalized, err := sharedvo.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	return &Customer{
		name:      strings.TrimSpace(name),
		company:   strings.TrimSpace(company),
		email:     normalized,
		phone:     strings.TrimSpace(phone),
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructCustomer(id uint, name, company, email, phone string, createdAt, updatedAt time.Time) (*Customer, error) {
	if id == 0 {
		return nil, fmt.Errorf("customer ID cannot be zero")
	}
	return &Customer{
		id:        id,
		name:      name,
		company:   company,
		email:     email,
		phone:     phone,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Customer) ID() uint             { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Company() string      { return c.company }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

func (c *Customer) SetID(id uint) {
	c.id = id
}

// Update overwrites only the non-empty inputs.
func (c *Customer) Update(name, company, email, phone string, now time.Time) error {
	if strings.TrimSpace(email) != "" {
		normalized, err := sharedvo.NormalizeEmail(email)
		if err != nil {
			return err
		}
		c.email = normalized
	}
	if v := strings.TrimSpace(name); v != "" {
		c.name = v
	}
	if v := strings.TrimSpace(company); v != "" {
		c.company = v
	}
	if v := strings.TrimSpace(phone); v != "" {
		c.phone = v
	}
	c.updatedAt = now
	return nil
}
