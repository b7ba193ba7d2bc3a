package user

import "context"

// Repository persists accounts. Lookups by email expect the normalized
// (trimmed, lower-case) form.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// GetByIDs skips ids that no longer exist, so author and creator
	// references on old requests resolve to fewer users, not an error.
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// UpdatePasswordHash writes only the hash and updated_at.
	UpdatePasswordHash(ctx context.Context, u *User) error
	// List orders by id ascending.
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
}

// ListFilter pages GET /api/users. Zero values fall back to the defaults in
// utils.NormalizePagination.
type ListFilter struct {
	Page     int
	PageSize int
}
