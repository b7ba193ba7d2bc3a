package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/reqtrack/reqtrack/internal/shared/errors"
)

// MaxPasswordBytes is the most bcrypt will look at.
const MaxPasswordBytes = 72

// BcryptPasswordHasher stores account passwords. The cost comes from
// auth.password.bcrypt_cost; tests use bcrypt.MinCost.
type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

// Hash rejects passwords longer than MaxPasswordBytes with a validation
// error instead of letting bcrypt fail with an internal one.
func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", errors.NewValidationError(fmt.Sprintf("password must be at most %d bytes", MaxPasswordBytes))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify returns one error for every failure so login cannot tell a wrong
// password from a corrupt stored hash.
func (h *BcryptPasswordHasher) Verify(password, hash string) error {
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return errPasswordMismatch
	}
	return nil
}

// NeedsRehash reports whether hash was produced with a different cost than
// the one configured now.
func (h *BcryptPasswordHasher) NeedsRehash(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))
	return err != nil || cost != h.cost
}

var errPasswordMismatch = fmt.Errorf("password verification failed")
