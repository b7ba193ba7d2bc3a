package usecases

import (
	"context"

	"github.com/reqtrack/reqtrack/internal/application/customer/dto"
)

type CreateCustomerExecutor interface {
	Execute(ctx context.Context, cmd CreateCustomerCommand) (*dto.CustomerDTO, error)
}

type UpdateCustomerExecutor interface {
	Execute(ctx context.Context, cmd UpdateCustomerCommand) (*dto.CustomerDTO, error)
}

type DeleteCustomerExecutor interface {
	Execute(ctx context.Context, id uint) error
}

type GetCustomerExecutor interface {
	Execute(ctx context.Context, id uint) (*dto.CustomerDTO, error)
}

type ListCustomersExecutor interface {
	Execute(ctx context.Context, query ListCustomersQuery) (*ListCustomersResult, error)
}

type SearchCustomersExecutor interface {
	Execute(ctx context.Context, query string) ([]dto.CustomerDTO, error)
}
