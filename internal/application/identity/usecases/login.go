package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/reqtrack/reqtrack/internal/application/identity/dto"
	"github.com/reqtrack/reqtrack/internal/domain/user"
	"github.com/reqtrack/reqtrack/internal/shared/errors"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenGenerator
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, hasher PasswordHasher, tokens TokenGenerator, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute answers unknown email and wrong password with the same error.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.AuthResultDTO, error) {
	invalid := errors.NewUnauthorizedError("Invalid email or password")

	u, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(cmd.Email)))
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, invalid
		}
		uc.logger.Errorw("failed to load user for login", "error", err)
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("login failed", "user_id", u.ID())
		return nil, invalid
	}
	uc.upgradeHash(ctx, u, cmd.Password)

	token, err := uc.tokens.Generate(u.ID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "error", err, "user_id", u.ID())
		return nil, err
	}

	return &dto.AuthResultDTO{User: dto.ToUserDTO(u), Token: token}, nil
}

// upgradeHash re-hashes the password with the current cost when the stored
// hash is outdated. Failures are logged and do not affect the login.
func (uc *LoginUseCase) upgradeHash(ctx context.Context, u *user.User, password string) {
	rh, ok := uc.hasher.(Rehasher)
	if !ok || !rh.NeedsRehash(u.PasswordHash()) {
		return
	}
	hash, err := uc.hasher.Hash(password)
	if err == nil {
		err = u.ReplacePasswordHash(hash, time.Now().UTC())
	}
	if err == nil {
		err = uc.userRepo.UpdatePasswordHash(ctx, u)
	}
	if err != nil {
		uc.logger.Warnw("failed to upgrade password hash", "user_id", u.ID(), "error", err)
		return
	}
	uc.logger.Infow("password hash upgraded", "user_id", u.ID())
}
