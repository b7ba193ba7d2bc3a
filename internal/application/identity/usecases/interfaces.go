package usecases

import (
	"context"

	"github.com/reqtrack/reqtrack/internal/application/identity/dto"
	"github.com/reqtrack/reqtrack/internal/shared/authorization"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// Rehasher is implemented by hashers that can tell when a stored hash was
// made with outdated parameters.
type Rehasher interface {
	NeedsRehash(hash string) bool
}

type TokenGenerator interface {
	Generate(userID uint, role authorization.UserRole) (string, error)
}

type RegisterUserExecutor interface {
	Execute(ctx context.Context, cmd RegisterUserCommand) (*dto.AuthResultDTO, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*dto.AuthResultDTO, error)
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, query GetProfileQuery) (*dto.UserDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}
