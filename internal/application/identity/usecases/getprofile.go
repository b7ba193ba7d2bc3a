package usecases

import (
	"context"

	"github.com/reqtrack/reqtrack/internal/application/identity/dto"
	"github.com/reqtrack/reqtrack/internal/domain/user"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

type GetProfileQuery struct {
	UserID uint
}

type GetProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*dto.UserDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}
	result := dto.ToUserDTO(u)
	return &result, nil
}
