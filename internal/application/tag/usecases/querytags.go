package usecases

import (
	"context"

	"github.com/reqtrack/reqtrack/internal/application/tag/dto"
	"github.com/reqtrack/reqtrack/internal/domain/tag"
	vo "github.com/reqtrack/reqtrack/internal/domain/tag/valueobjects"
	"github.com/reqtrack/reqtrack/internal/shared/errors"
	"github.com/reqtrack/reqtrack/internal/shared/i18n"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

type GetTagUseCase struct {
	tagRepo tag.Repository
}

func NewGetTagUseCase(tagRepo tag.Repository) *GetTagUseCase {
	return &GetTagUseCase{tagRepo: tagRepo}
}

func (uc *GetTagUseCase) Execute(ctx context.Context, id uint, lang i18n.Lang) (*dto.TagDTO, error) {
	t, err := uc.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := dto.ToTagDTO(t, lang)
	return &result, nil
}

type ListTagsUseCase struct {
	tagRepo tag.Repository
	logger  logger.Interface
}

func NewListTagsUseCase(tagRepo tag.Repository, logger logger.Interface) *ListTagsUseCase {
	return &ListTagsUseCase{tagRepo: tagRepo, logger: logger}
}

func (uc *ListTagsUseCase) Execute(ctx context.Context, lang i18n.Lang) ([]dto.TagDTO, error) {
	tags, err := uc.tagRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tags", "error", err)
		return nil, err
	}
	return dto.ToTagDTOs(tags, lang), nil
}

type ListTagsByCategoryUseCase struct {
	tagRepo tag.Repository
	logger  logger.Interface
}

func NewListTagsByCategoryUseCase(tagRepo tag.Repository, logger logger.Interface) *ListTagsByCategoryUseCase {
	return &ListTagsByCategoryUseCase{tagRepo: tagRepo, logger: logger}
}

// Execute accepts either the category code or its Japanese label.
func (uc *ListTagsByCategoryUseCase) Execute(ctx context.Context, category string, lang i18n.Lang) ([]dto.TagDTO, error) {
	c, err := vo.ParseCategory(category)
	if err != nil {
		return nil, errors.NewValidationError("Invalid category", category)
	}
	tags, err := uc.tagRepo.ListByCategory(ctx, c)
	if err != nil {
		uc.logger.Errorw("failed to list tags by category", "error", err, "category", c)
		return nil, err
	}
	return dto.ToTagDTOs(tags, lang), nil
}

type TagStatsUseCase struct {
	tagRepo tag.Repository
	logger  logger.Interface
}

func NewTagStatsUseCase(tagRepo tag.Repository, logger logger.Interface) *TagStatsUseCase {
	return &TagStatsUseCase{tagRepo: tagRepo, logger: logger}
}

func (uc *TagStatsUseCase) Execute(ctx context.Context, lang i18n.Lang) ([]dto.CategoryStatDTO, error) {
	counts, err := uc.tagRepo.CountByCategory(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count tags by category", "error", err)
		return nil, err
	}
	out := make([]dto.CategoryStatDTO, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.CategoryStatDTO{
			Category: c.Category.String(),
			Label:    dto.CategoryLabel(lang, c.Category),
			Count:    c.Count,
		})
	}
	return out, nil
}

type DeleteTagUseCase struct {
	tagRepo tag.Repository
	logger  logger.Interface
}

func NewDeleteTagUseCase(tagRepo tag.Repository, logger logger.Interface) *DeleteTagUseCase {
	return &DeleteTagUseCase{tagRepo: tagRepo, logger: logger}
}

func (uc *DeleteTagUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.tagRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Infow("tag deleted", "tag_id", id)
	return nil
}
