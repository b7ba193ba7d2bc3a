package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/reqtrack/reqtrack/internal/application/identity/dto"
	"github.com/reqtrack/reqtrack/internal/domain/sharedvo"
	"github.com/reqtrack/reqtrack/internal/domain/user"
	"github.com/reqtrack/reqtrack/internal/shared/errors"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

type RegisterUserCommand struct {
	Name     string
	Email    string
	Password string
}

type RegisterUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenGenerator
	logger   logger.Interface
}

func NewRegisterUserUseCase(userRepo user.Repository, hasher PasswordHasher, tokens TokenGenerator, logger logger.Interface) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*dto.AuthResultDTO, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, errors.NewValidationError("name is required")
	}
	email, err := sharedvo.NormalizeEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if len(cmd.Password) < user.MinPasswordLength {
		return nil, errors.NewValidationError("password must be at least 6 characters")
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("User already exists")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, err
	}

	u, err := user.NewUser(cmd.Name, email, hash, time.Now().UTC())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.userRepo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, err
	}

	token, err := uc.tokens.Generate(u.ID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "error", err, "user_id", u.ID())
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", u.ID())
	return &dto.AuthResultDTO{User: dto.ToUserDTO(u), Token: token}, nil
}
