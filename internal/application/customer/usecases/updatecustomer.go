package usecases

import (
	"context"
	"time"

	"github.com/reqtrack/reqtrack/internal/application/customer/dto"
	"github.com/reqtrack/reqtrack/internal/domain/customer"
	"github.com/reqtrack/reqtrack/internal/shared/errors"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

// UpdateCustomerCommand leaves a field unchanged when it is empty.
type UpdateCustomerCommand struct {
	ID      uint
	Name    string
	Company string
	Email   string
	Phone   string
}

type UpdateCustomerUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewUpdateCustomerUseCase(customerRepo customer.Repository, logger logger.Interface) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{customerRepo: customerRepo, logger: logger}
}

func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, cmd UpdateCustomerCommand) (*dto.CustomerDTO, error) {
	c, err := uc.customerRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if err := c.Update(cmd.Name, cmd.Company, cmd.Email, cmd.Phone, time.Now().UTC()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.customerRepo.ExistsByEmail(ctx, c.Email(), c.ID())
	if err != nil {
		uc.logger.Errorw("failed to check customer email", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("Customer email already exists")
	}

	if err := uc.customerRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update customer", "error", err, "customer_id", cmd.ID)
		return nil, err
	}

	result := dto.ToCustomerDTO(c)
	return &result, nil
}
