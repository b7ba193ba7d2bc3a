package usecases

import (
	"context"
	"time"

	"github.com/reqtrack/reqtrack/internal/application/request/dto"
	"github.com/reqtrack/reqtrack/internal/domain/request"
	vo "github.com/reqtrack/reqtrack/internal/domain/request/valueobjects"
	"github.com/reqtrack/reqtrack/internal/shared/errors"
	"github.com/reqtrack/reqtrack/internal/shared/i18n"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

type CreateRequestCommand struct {
	Title        string
	Content      string
	Reporter     string
	Status       string
	Priority     string
	CustomerIDs  []uint
	TagIDs       []uint
	ParentID     *uint
	RelatedIDs   []uint
	CustomFields map[string]any
	CreatorID    uint
	Lang         i18n.Lang
}

type CreateRequestUseCase struct {
	requestRepo request.Repository
	sequences   request.SequenceAllocator
	txManager   TransactionRunner
	populator   *Populator
	logger      logger.Interface
}

func NewCreateRequestUseCase(
	requestRepo request.Repository,
	sequences request.SequenceAllocator,
	txManager TransactionRunner,
	populator *Populator,
	logger logger.Interface,
) *CreateRequestUseCase {
	return &CreateRequestUseCase{
		requestRepo: requestRepo,
		sequences:   sequences,
		txManager:   txManager,
		populator:   populator,
		logger:      logger,
	}
}

func (uc *CreateRequestUseCase) Execute(ctx context.Context, cmd CreateRequestCommand) (*dto.RequestDTO, error) {
	uc.logger.Infow("executing create request use case", "creator_id", cmd.CreatorID)

	status, err := parseOptionalStatus(cmd.Status)
	if err != nil {
		return nil, err
	}
	priority, err := parseOptionalPriority(cmd.Priority)
	if err != nil {
		return nil, err
	}

	req, err := request.NewRequest(request.NewRequestParams{
		Title:        cmd.Title,
		Content:      cmd.Content,
		Reporter:     cmd.Reporter,
		Status:       status,
		Priority:     priority,
		CustomerIDs:  dedupe(cmd.CustomerIDs),
		TagIDs:       dedupe(cmd.TagIDs),
		ParentID:     cmd.ParentID,
		RelatedIDs:   dedupe(cmd.RelatedIDs),
		CustomFields: cmd.CustomFields,
		CreatedBy:    cmd.CreatorID,
	}, time.Now().UTC())
	if err != nil {
		uc.logger.Errorw("invalid request data", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		seq, err := uc.sequences.Next(txCtx, request.SequenceName)
		if err != nil {
			return err
		}
		if err := req.AssignSequence(seq); err != nil {
			return err
		}
		return uc.requestRepo.Create(txCtx, req)
	})
	if err != nil {
		uc.logger.Errorw("failed to create request", "error", err)
		return nil, err
	}

	uc.logger.Infow("request created", "request_id", req.ID(), "request_number", req.Number())
	return uc.populator.PopulateOne(ctx, req, cmd.Lang)
}

func parseOptionalStatus(s string) (vo.Status, error) {
	if s == "" {
		return "", nil
	}
	status, err := vo.ParseStatus(s)
	if err != nil {
		return "", errors.NewValidationError(err.Error())
	}
	return status, nil
}

func parseOptionalPriority(s string) (vo.Priority, error) {
	if s == "" {
		return "", nil
	}
	priority, err := vo.ParsePriority(s)
	if err != nil {
		return "", errors.NewValidationError(err.Error())
	}
	return priority, nil
}

// dedupe drops repeated ids and keeps first-seen order.
func dedupe(ids []uint) []uint {
	if ids == nil {
		return nil
	}
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
