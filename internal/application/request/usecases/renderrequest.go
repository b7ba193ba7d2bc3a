package usecases

import (
	"context"

	"github.com/reqtrack/reqtrack/internal/application/request/dto"
	"github.com/reqtrack/reqtrack/internal/domain/request"
	"github.com/reqtrack/reqtrack/internal/domain/user"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
	"github.com/reqtrack/reqtrack/internal/shared/services/markdown"
)

type RenderRequestUseCase struct {
	requestRepo request.Repository
	userRepo    user.Repository
	renderer    markdown.Renderer
	logger      logger.Interface
}

func NewRenderRequestUseCase(requestRepo request.Repository, userRepo user.Repository, renderer markdown.Renderer, logger logger.Interface) *RenderRequestUseCase {
	return &RenderRequestUseCase{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *RenderRequestUseCase) Execute(ctx context.Context, id uint) (*dto.RenderedRequestDTO, error) {
	req, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	contentHTML, err := uc.renderer.Render(req.Content())
	if err != nil {
		uc.logger.Errorw("failed to render request content", "error", err, "request_id", id)
		return nil, err
	}

	comments := req.Comments()
	authorIDs := make([]uint, 0, len(comments))
	for _, c := range comments {
		authorIDs = append(authorIDs, c.AuthorID())
	}
	authors, err := uc.userRepo.GetByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	authorByID := make(map[uint]dto.UserRefDTO, len(authors))
	for _, u := range authors {
		authorByID[u.ID()] = dto.UserRefDTO{ID: u.ID(), Name: u.Name()}
	}

	result := &dto.RenderedRequestDTO{
		ID:            req.ID(),
		RequestNumber: req.Number(),
		Title:         req.Title(),
		ContentHTML:   contentHTML,
		Comments:      make([]dto.RenderedCommentDTO, 0, len(comments)),
	}
	for _, c := range comments {
		html, err := uc.renderer.Render(c.Content())
		if err != nil {
			uc.logger.Errorw("failed to render comment", "error", err, "comment_id", c.ID())
			return nil, err
		}
		item := dto.RenderedCommentDTO{
			ID:          c.ID(),
			HTML:        html,
			Attachments: c.Attachments(),
			CreatedAt:   c.CreatedAt(),
		}
		if a, ok := authorByID[c.AuthorID()]; ok {
			item.Author = &a
		}
		result.Comments = append(result.Comments, item)
	}
	return result, nil
}
