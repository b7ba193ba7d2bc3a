package usecases

import (
	"context"

	"github.com/reqtrack/reqtrack/internal/application/tag/dto"
	"github.com/reqtrack/reqtrack/internal/shared/i18n"
)

type CreateTagExecutor interface {
	Execute(ctx context.Context, cmd CreateTagCommand) (*dto.TagDTO, error)
}

type UpdateTagExecutor interface {
	Execute(ctx context.Context, cmd UpdateTagCommand) (*dto.TagDTO, error)
}

type DeleteTagExecutor interface {
	Execute(ctx context.Context, id uint) error
}

type GetTagExecutor interface {
	Execute(ctx context.Context, id uint, lang i18n.Lang) (*dto.TagDTO, error)
}

type ListTagsExecutor interface {
	Execute(ctx context.Context, lang i18n.Lang) ([]dto.TagDTO, error)
}

type ListTagsByCategoryExecutor interface {
	Execute(ctx context.Context, category string, lang i18n.Lang) ([]dto.TagDTO, error)
}

type TagStatsExecutor interface {
	Execute(ctx context.Context, lang i18n.Lang) ([]dto.CategoryStatDTO, error)
}
