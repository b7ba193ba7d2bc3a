package usecases

import (
	"context"

	"github.com/reqtrack/reqtrack/internal/domain/customer"
	"github.com/reqtrack/reqtrack/internal/shared/errors"
)

type mockCustomerRepository struct {
	CreateFunc        func(ctx context.Context, c *customer.Customer) error
	UpdateFunc        func(ctx context.Context, c *customer.Customer) error
	DeleteFunc        func(ctx context.Context, id uint) error
	GetByIDFunc       func(ctx context.Context, id uint) (*customer.Customer, error)
	ExistsByEmailFunc func(ctx context.Context, email string, excludeID uint) (bool, error)
	ListFunc          func(ctx context.Context, filter customer.ListFilter) ([]*customer.Customer, int64, error)
	SearchFunc        func(ctx context.Context, query string) ([]*customer.Customer, error)
}

func (m *mockCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	c.SetID(1)
	return nil
}

func (m *mockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCustomerRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCustomerRepository) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("Customer not found")
}

func (m *mockCustomerRepository) GetByIDs(ctx context.Context, ids []uint) ([]*customer.Customer, error) {
	return nil, nil
}

func (m *mockCustomerRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email, excludeID)
	}
	return false, nil
}

func (m *mockCustomerRepository) List(ctx context.Context, filter customer.ListFilter) ([]*customer.Customer, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockCustomerRepository) Search(ctx context.Context, query string) ([]*customer.Customer, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return nil, nil
}
