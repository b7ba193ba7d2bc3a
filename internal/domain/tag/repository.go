package tag

import (
	"context"

	vo "github.com/reqtrack/reqtrack/internal/domain/tag/valueobjects"
)

type Repository interface {
	Create(ctx context.Context, t *Tag) error
	Update(ctx context.Context, t *Tag) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Tag, error)
	// GetByIDs skips ids that no longer exist.
	GetByIDs(ctx context.Context, ids []uint) ([]*Tag, error)
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)
	List(ctx context.Context) ([]*Tag, error)
	ListByCategory(ctx context.Context, category vo.Category) ([]*Tag, error)
	// CountByCategory orders by count desc.
	CountByCategory(ctx context.Context) ([]CategoryCount, error)
}

type CategoryCount struct {
	Category vo.Category
	Count    int64
}
