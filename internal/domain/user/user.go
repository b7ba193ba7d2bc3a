package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/reqtrack/reqtrack/internal/domain/sharedvo"
	"github.com/reqtrack/reqtrack/internal/shared/authorization"
)

// MinPasswordLength applies to the plain password before hashing.
const MinPasswordLength = 6

// User is an account that can sign in and act on requests.
type User struct {
	id           uint
	name         string
	email        string
	passwordHash string
	role         authorization.UserRole
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser expects an already hashed password. New accounts get RoleUser.
func NewUser(name, email, passwordHash string, now time.Time) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	normalized, err := sharedvo.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	return &User{
		name:         strings.TrimSpace(name),
		email:        normalized,
		passwordHash: passwordHash,
		role:         authorization.RoleUser,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(id uint, name, email, passwordHash string, role authorization.UserRole, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         authorization.ParseUserRole(string(role)),
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint                     { return u.id }
func (u *User) Name() string                 { return u.name }
func (u *User) Email() string                { return u.email }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }

func (u *User) SetID(id uint) {
	u.id = id
}

// ReplacePasswordHash swaps in a new hash for the same password, e.g. after
// the bcrypt cost changed.
func (u *User) ReplacePasswordHash(hash string, now time.Time) error {
	if hash == "" {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = hash
	u.updatedAt = now
	return nil
}

// PromoteToAdmin is used by seeding; there is no API for role changes.
func (u *User) PromoteToAdmin(now time.Time) {
	u.role = authorization.RoleAdmin
	u.updatedAt = now
}
