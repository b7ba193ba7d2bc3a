package usecases

import (
	"context"

	"github.com/reqtrack/reqtrack/internal/application/identity/dto"
	"github.com/reqtrack/reqtrack/internal/domain/user"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

type ListUsersQuery struct {
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users []dto.UserDTO
	Total int64
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	users, total, err := uc.userRepo.List(ctx, user.ListFilter{Page: query.Page, PageSize: query.PageSize})
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}
	return &ListUsersResult{Users: dto.ToUserDTOs(users), Total: total}, nil
}
