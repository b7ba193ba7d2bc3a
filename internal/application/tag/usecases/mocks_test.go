package usecases

import (
	"context"

	"github.com/reqtrack/reqtrack/internal/domain/tag"
	vo "github.com/reqtrack/reqtrack/internal/domain/tag/valueobjects"
	"github.com/reqtrack/reqtrack/internal/shared/errors"
)

type mockTagRepository struct {
	CreateFunc          func(ctx context.Context, t *tag.Tag) error
	UpdateFunc          func(ctx context.Context, t *tag.Tag) error
	DeleteFunc          func(ctx context.Context, id uint) error
	GetByIDFunc         func(ctx context.Context, id uint) (*tag.Tag, error)
	ExistsByNameFunc    func(ctx context.Context, name string, excludeID uint) (bool, error)
	ListFunc            func(ctx context.Context) ([]*tag.Tag, error)
	ListByCategoryFunc  func(ctx context.Context, category vo.Category) ([]*tag.Tag, error)
	CountByCategoryFunc func(ctx context.Context) ([]tag.CategoryCount, error)
}

func (m *mockTagRepository) Create(ctx context.Context, t *tag.Tag) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	t.SetID(1)
	return nil
}

func (m *mockTagRepository) Update(ctx context.Context, t *tag.Tag) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTagRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTagRepository) GetByID(ctx context.Context, id uint) (*tag.Tag, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("Tag not found")
}

func (m *mockTagRepository) GetByIDs(ctx context.Context, ids []uint) ([]*tag.Tag, error) {
	return nil, nil
}

func (m *mockTagRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	if m.ExistsByNameFunc != nil {
		return m.ExistsByNameFunc(ctx, name, excludeID)
	}
	return false, nil
}

func (m *mockTagRepository) List(ctx context.Context) ([]*tag.Tag, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTagRepository) ListByCategory(ctx context.Context, category vo.Category) ([]*tag.Tag, error) {
	if m.ListByCategoryFunc != nil {
		return m.ListByCategoryFunc(ctx, category)
	}
	return nil, nil
}

func (m *mockTagRepository) CountByCategory(ctx context.Context) ([]tag.CategoryCount, error) {
	if m.CountByCategoryFunc != nil {
		return m.CountByCategoryFunc(ctx)
	}
	return nil, nil
}
