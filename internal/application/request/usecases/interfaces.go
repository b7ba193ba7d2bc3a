package usecases

import (
	"context"

	"github.com/reqtrack/reqtrack/internal/application/request/dto"
	"github.com/reqtrack/reqtrack/internal/shared/i18n"
)

// TransactionRunner is satisfied by db.TransactionManager.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier delivers best-effort messages to the request creator.
type Notifier interface {
	SendStatusChanged(to string, requestID uint, number, title, oldStatus, newStatus string) error
	SendCommentAdded(to string, requestID uint, number, title, author, content string) error
}

type CreateRequestExecutor interface {
	Execute(ctx context.Context, cmd CreateRequestCommand) (*dto.RequestDTO, error)
}

type ListRequestsExecutor interface {
	Execute(ctx context.Context, query ListRequestsQuery) (*ListRequestsResult, error)
}

type GetRequestExecutor interface {
	Execute(ctx context.Context, id uint, lang i18n.Lang) (*dto.RequestDTO, error)
}

type UpdateRequestExecutor interface {
	Execute(ctx context.Context, cmd UpdateRequestCommand) (*dto.RequestDTO, error)
}

type DeleteRequestExecutor interface {
	Execute(ctx context.Context, id uint) error
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*dto.RequestDTO, error)
}

type FindSimilarExecutor interface {
	Execute(ctx context.Context, query FindSimilarQuery) ([]dto.SimilarRequestDTO, error)
}

type RequestStatsExecutor interface {
	Execute(ctx context.Context, lang i18n.Lang) (*dto.StatsDTO, error)
}

type RenderRequestExecutor interface {
	Execute(ctx context.Context, id uint) (*dto.RenderedRequestDTO, error)
}
