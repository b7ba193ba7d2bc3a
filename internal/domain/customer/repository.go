package customer

import "context"

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Customer, error)
	// GetByIDs skips ids that no longer exist.
	GetByIDs(ctx context.Context, ids []uint) ([]*Customer, error)
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]*Customer, int64, error)
	// Search matches query as a case-insensitive substring of name or company.
	Search(ctx context.Context, query string) ([]*Customer, error)
}

type ListFilter struct {
	Page     int
	PageSize int
}
