package usecases

import (
	"context"

	"github.com/reqtrack/reqtrack/internal/application/request/dto"
	"github.com/reqtrack/reqtrack/internal/domain/request"
	"github.com/reqtrack/reqtrack/internal/shared/constants"
	"github.com/reqtrack/reqtrack/internal/shared/errors"
	"github.com/reqtrack/reqtrack/internal/shared/i18n"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
	"github.com/reqtrack/reqtrack/internal/shared/utils"
)

type ListRequestsQuery struct {
	Status     string
	Priority   string
	CustomerID *uint
	TagID      *uint
	Search     string
	SortBy     string
	SortOrder  string
	Page       int
	PageSize   int
	Lang       i18n.Lang
}

type ListRequestsResult struct {
	Requests []dto.RequestDTO
	Total    int64
	Page     int
	PageSize int
}

type ListRequestsUseCase struct {
	requestRepo request.Repository
	populator   *Populator
	logger      logger.Interface
}

func NewListRequestsUseCase(requestRepo request.Repository, populator *Populator, logger logger.Interface) *ListRequestsUseCase {
	return &ListRequestsUseCase{requestRepo: requestRepo, populator: populator, logger: logger}
}

func (uc *ListRequestsUseCase) Execute(ctx context.Context, query ListRequestsQuery) (*ListRequestsResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)
	filter := request.ListFilter{
		CustomerID: query.CustomerID,
		TagID:      query.TagID,
		Search:     query.Search,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		SortBy:     query.SortBy,
		SortOrder:  query.SortOrder,
	}
	if query.Status != "" {
		status, err := parseOptionalStatus(query.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, err := parseOptionalPriority(query.Priority)
		if err != nil {
			return nil, err
		}
		filter.Priority = &priority
	}

	requests, total, err := uc.requestRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list requests", "error", err)
		return nil, err
	}

	items, err := uc.populator.Populate(ctx, requests, query.Lang)
	if err != nil {
		uc.logger.Errorw("failed to populate requests", "error", err)
		return nil, err
	}

	return &ListRequestsResult{
		Requests: items,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}

type GetRequestUseCase struct {
	requestRepo request.Repository
	populator   *Populator
}

func NewGetRequestUseCase(requestRepo request.Repository, populator *Populator) *GetRequestUseCase {
	return &GetRequestUseCase{requestRepo: requestRepo, populator: populator}
}

func (uc *GetRequestUseCase) Execute(ctx context.Context, id uint, lang i18n.Lang) (*dto.RequestDTO, error) {
	req, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.populator.PopulateOne(ctx, req, lang)
}

type DeleteRequestUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewDeleteRequestUseCase(requestRepo request.Repository, logger logger.Interface) *DeleteRequestUseCase {
	return &DeleteRequestUseCase{requestRepo: requestRepo, logger: logger}
}

func (uc *DeleteRequestUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.requestRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Infow("request deleted", "request_id", id)
	return nil
}

type FindSimilarQuery struct {
	Title   string
	Content string
}

type FindSimilarUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewFindSimilarUseCase(requestRepo request.Repository, logger logger.Interface) *FindSimilarUseCase {
	return &FindSimilarUseCase{requestRepo: requestRepo, logger: logger}
}

func (uc *FindSimilarUseCase) Execute(ctx context.Context, query FindSimilarQuery) ([]dto.SimilarRequestDTO, error) {
	q := request.SimilarQuery{Title: query.Title, Content: query.Content}
	if q.IsEmpty() {
		return nil, errors.NewBadRequestError("Title or content is required")
	}

	requests, err := uc.requestRepo.FindSimilar(ctx, q, constants.SimilarRequestLimit)
	if err != nil {
		uc.logger.Errorw("failed to find similar requests", "error", err)
		return nil, err
	}

	out := make([]dto.SimilarRequestDTO, 0, len(requests))
	for _, r := range requests {
		out = append(out, dto.SimilarRequestDTO{
			ID:            r.ID(),
			RequestNumber: r.Number(),
			Title:         r.Title(),
			Content:       r.Content(),
			Status:        r.Status().String(),
		})
	}
	return out, nil
}
