package usecases

import (
	"context"
	"time"

	"github.com/reqtrack/reqtrack/internal/application/customer/dto"
	"github.com/reqtrack/reqtrack/internal/domain/customer"
	"github.com/reqtrack/reqtrack/internal/shared/errors"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

type CreateCustomerCommand struct {
	Name    string
	Company string
	Email   string
	Phone   string
}

type CreateCustomerUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewCreateCustomerUseCase(customerRepo customer.Repository, logger logger.Interface) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{customerRepo: customerRepo, logger: logger}
}

func (uc *CreateCustomerUseCase) Execute(ctx context.Context, cmd CreateCustomerCommand) (*dto.CustomerDTO, error) {
	uc.logger.Infow("executing create customer use case", "company", cmd.Company)

	c, err := customer.NewCustomer(cmd.Name, cmd.Company, cmd.Email, cmd.Phone, time.Now().UTC())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.customerRepo.ExistsByEmail(ctx, c.Email(), 0)
	if err != nil {
		uc.logger.Errorw("failed to check customer email", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("Customer email already exists")
	}

	if err := uc.customerRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to create customer", "error", err)
		return nil, err
	}

	result := dto.ToCustomerDTO(c)
	return &result, nil
}
