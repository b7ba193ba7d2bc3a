package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/reqtrack/reqtrack/internal/domain/tag"
	vo "github.com/reqtrack/reqtrack/internal/domain/tag/valueobjects"
	"github.com/reqtrack/reqtrack/internal/infrastructure/persistence/mappers"
	"github.com/reqtrack/reqtrack/internal/infrastructure/persistence/models"
	"github.com/reqtrack/reqtrack/internal/shared/db"
	apperrors "github.com/reqtrack/reqtrack/internal/shared/errors"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

type TagRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewTagRepository(db *gorm.DB, logger logger.Interface) *TagRepository {
	return &TagRepository{db: db, logger: logger}
}

func (r *TagRepository) Create(ctx context.Context, t *tag.Tag) error {
	model := mappers.TagToModel(t)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("Tag name already exists")
		}
		return fmt.Errorf("failed to create tag: %w", err)
	}
	t.SetID(model.ID)
	return nil
}

func (r *TagRepository) Update(ctx context.Context, t *tag.Tag) error {
	model := mappers.TagToModel(t)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.TagModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"name":       model.Name,
			"color":      model.Color,
			"category":   model.Category,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("Tag name already exists")
		}
		return fmt.Errorf("failed to update tag: %w", result.Error)
	}
	// RowsAffected can be 0 on mysql when nothing changed; callers load
	// the row first.
	return nil
}

// Delete leaves request_tags rows in place; readers skip dangling tag ids.
func (r *TagRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.TagModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete tag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Tag not found")
	}
	return nil
}

func (r *TagRepository) GetByID(ctx context.Context, id uint) (*tag.Tag, error) {
	var model models.TagModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Tag not found")
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return mappers.TagToDomain(&model)
}

func (r *TagRepository) GetByIDs(ctx context.Context, ids []uint) ([]*tag.Tag, error) {
	if len(ids) == 0 {
		return []*tag.Tag{}, nil
	}
	var rows []models.TagModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}
	return mapAll(rows, mappers.TagToDomain)
}

func (r *TagRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.TagModel{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check tag name: %w", err)
	}
	return count > 0, nil
}

func (r *TagRepository) List(ctx context.Context) ([]*tag.Tag, error) {
	var rows []models.TagModel
	if err := db.GetTxFromContext(ctx, r.db).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return mapAll(rows, mappers.TagToDomain)
}

func (r *TagRepository) ListByCategory(ctx context.Context, category vo.Category) ([]*tag.Tag, error) {
	var rows []models.TagModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("category = ?", category.String()).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tags by category: %w", err)
	}
	return mapAll(rows, mappers.TagToDomain)
}

func (r *TagRepository) CountByCategory(ctx context.Context) ([]tag.CategoryCount, error) {
	var rows []struct {
		Category string
		Count    int64
	}
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.TagModel{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC").Order("category ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tags by category: %w", err)
	}

	out := make([]tag.CategoryCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, tag.CategoryCount{Category: vo.Category(row.Category), Count: row.Count})
	}
	return out, nil
}
