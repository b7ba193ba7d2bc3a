package usecases

import (
	"context"
	"strings"

	"github.com/reqtrack/reqtrack/internal/application/customer/dto"
	"github.com/reqtrack/reqtrack/internal/domain/customer"
	"github.com/reqtrack/reqtrack/internal/shared/errors"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

type GetCustomerUseCase struct {
	customerRepo customer.Repository
}

func NewGetCustomerUseCase(customerRepo customer.Repository) *GetCustomerUseCase {
	return &GetCustomerUseCase{customerRepo: customerRepo}
}

func (uc *GetCustomerUseCase) Execute(ctx context.Context, id uint) (*dto.CustomerDTO, error) {
	c, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := dto.ToCustomerDTO(c)
	return &result, nil
}

type ListCustomersQuery struct {
	Page     int
	PageSize int
}

type ListCustomersResult struct {
	Customers []dto.CustomerDTO
	Total     int64
}

type ListCustomersUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewListCustomersUseCase(customerRepo customer.Repository, logger logger.Interface) *ListCustomersUseCase {
	return &ListCustomersUseCase{customerRepo: customerRepo, logger: logger}
}

func (uc *ListCustomersUseCase) Execute(ctx context.Context, query ListCustomersQuery) (*ListCustomersResult, error) {
	customers, total, err := uc.customerRepo.List(ctx, customer.ListFilter{Page: query.Page, PageSize: query.PageSize})
	if err != nil {
		uc.logger.Errorw("failed to list customers", "error", err)
		return nil, err
	}
	return &ListCustomersResult{Customers: dto.ToCustomerDTOs(customers), Total: total}, nil
}

type SearchCustomersUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewSearchCustomersUseCase(customerRepo customer.Repository, logger logger.Interface) *SearchCustomersUseCase {
	return &SearchCustomersUseCase{customerRepo: customerRepo, logger: logger}
}

func (uc *SearchCustomersUseCase) Execute(ctx context.Context, query string) ([]dto.CustomerDTO, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.NewBadRequestError("Search query is required")
	}
	customers, err := uc.customerRepo.Search(ctx, query)
	if err != nil {
		uc.logger.Errorw("failed to search customers", "error", err)
		return nil, err
	}
	return dto.ToCustomerDTOs(customers), nil
}

type DeleteCustomerUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewDeleteCustomerUseCase(customerRepo customer.Repository, logger logger.Interface) *DeleteCustomerUseCase {
	return &DeleteCustomerUseCase{customerRepo: customerRepo, logger: logger}
}

// Execute does not touch requests that still reference the customer.
func (uc *DeleteCustomerUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.customerRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Infow("customer deleted", "customer_id", id)
	return nil
}
