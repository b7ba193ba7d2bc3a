package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reqtrack/reqtrack/internal/domain/customer"
	"github.com/reqtrack/reqtrack/internal/shared/errors"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

func acme(t *testing.T) *customer.Customer {
	t.Helper()
	now := time.Now().UTC()
	c, err := customer.ReconstructCustomer(3, "Hanako", "ACME", "h@acme.jp", "03-0000", now, now)
	require.NoError(t, err)
	return c
}

func TestCreateCustomerUseCase_Execute(t *testing.T) {
	tests := []struct {
		name     string
		cmd      CreateCustomerCommand
		exists   bool
		wantType errors.ErrorType
	}{
		{"success", CreateCustomerCommand{Name: "Hanako", Company: "ACME", Email: "H@acme.jp"}, false, ""},
		{"missing company", CreateCustomerCommand{Name: "Hanako", Email: "h@acme.jp"}, false, errors.ErrorTypeValidation},
		{"invalid email", CreateCustomerCommand{Name: "Hanako", Company: "ACME", Email: "x"}, false, errors.ErrorTypeValidation},
		{"duplicate email", CreateCustomerCommand{Name: "Hanako", Company: "ACME", Email: "h@acme.jp"}, true, errors.ErrorTypeConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockCustomerRepository{
				ExistsByEmailFunc: func(ctx context.Context, email string, excludeID uint) (bool, error) {
					assert.Equal(t, uint(0), excludeID)
					return tt.exists, nil
				},
			}
			uc := NewCreateCustomerUseCase(repo, logger.NewNopLogger())

			result, err := uc.Execute(context.Background(), tt.cmd)

			if tt.wantType == "" {
				require.NoError(t, err)
				assert.Equal(t, uint(1), result.ID)
				assert.Equal(t, "h@acme.jp", result.Email)
				return
			}
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantType, appErr.Type)
		})
	}
}

func TestUpdateCustomerUseCase_Execute(t *testing.T) {
	t.Run("keeps empty fields and excludes self from email check", func(t *testing.T) {
		var excluded uint
		var saved *customer.Customer
		repo := &mockCustomerRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*customer.Customer, error) { return acme(t), nil },
			ExistsByEmailFunc: func(ctx context.Context, email string, excludeID uint) (bool, error) {
				excluded = excludeID
				return false, nil
			},
			UpdateFunc: func(ctx context.Context, c *customer.Customer) error {
				saved = c
				return nil
			},
		}
		uc := NewUpdateCustomerUseCase(repo, logger.NewNopLogger())

		result, err := uc.Execute(context.Background(), UpdateCustomerCommand{ID: 3, Company: "ACME Japan"})

		require.NoError(t, err)
		assert.Equal(t, uint(3), excluded)
		require.NotNil(t, saved)
		assert.Equal(t, "Hanako", result.Name)
		assert.Equal(t, "ACME Japan", result.Company)
		assert.Equal(t, "h@acme.jp", result.Email)
	})

	t.Run("email taken by another customer", func(t *testing.T) {
		repo := &mockCustomerRepository{
			GetByIDFunc:       func(ctx context.Context, id uint) (*customer.Customer, error) { return acme(t), nil },
			ExistsByEmailFunc: func(ctx context.Context, email string, excludeID uint) (bool, error) { return true, nil },
		}
		uc := NewUpdateCustomerUseCase(repo, logger.NewNopLogger())

		_, err := uc.Execute(context.Background(), UpdateCustomerCommand{ID: 3, Email: "other@acme.jp"})
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("not found", func(t *testing.T) {
		uc := NewUpdateCustomerUseCase(&mockCustomerRepository{}, logger.NewNopLogger())
		_, err := uc.Execute(context.Background(), UpdateCustomerCommand{ID: 99, Name: "x"})
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestSearchCustomersUseCase_Execute(t *testing.T) {
	var got string
	repo := &mockCustomerRepository{
		SearchFunc: func(ctx context.Context, query string) ([]*customer.Customer, error) {
			got = query
			return []*customer.Customer{acme(t)}, nil
		},
	}
	uc := NewSearchCustomersUseCase(repo, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), "  acm ")
	require.NoError(t, err)
	assert.Equal(t, "acm", got)
	assert.Len(t, result, 1)

	_, err = uc.Execute(context.Background(), " ")
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeBadRequest, appErr.Type)
}

func TestListAndDeleteCustomers(t *testing.T) {
	repo := &mockCustomerRepository{
		ListFunc: func(ctx context.Context, filter customer.ListFilter) ([]*customer.Customer, int64, error) {
			return []*customer.Customer{acme(t)}, 1, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			return errors.NewNotFoundError("Customer not found")
		},
	}

	list, err := NewListCustomersUseCase(repo, logger.NewNopLogger()).Execute(context.Background(), ListCustomersQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)

	err = NewDeleteCustomerUseCase(repo, logger.NewNopLogger()).Execute(context.Background(), 5)
	assert.True(t, errors.IsNotFoundError(err))
}
