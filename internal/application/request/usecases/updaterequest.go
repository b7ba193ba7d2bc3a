package usecases

import (
	"context"
	"time"

	"github.com/reqtrack/reqtrack/internal/application/request/dto"
	"github.com/reqtrack/reqtrack/internal/domain/request"
	vo "github.com/reqtrack/reqtrack/internal/domain/request/valueobjects"
	"github.com/reqtrack/reqtrack/internal/domain/user"
	"github.com/reqtrack/reqtrack/internal/shared/errors"
	"github.com/reqtrack/reqtrack/internal/shared/i18n"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

// UpdateRequestCommand mirrors request.Update with unparsed enums. A nil
// pointer means the field was not submitted.
type UpdateRequestCommand struct {
	ID       uint
	ActorID  uint
	Title    *string
	Content  *string
	Reporter *string
	Status   *string
	Priority *string

	CustomerIDs  *[]uint
	TagIDs       *[]uint
	ParentSet    bool
	ParentID     *uint
	RelatedIDs   *[]uint
	CustomFields *map[string]any

	Lang i18n.Lang
}

type UpdateRequestUseCase struct {
	requestRepo request.Repository
	txManager   TransactionRunner
	populator   *Populator
	notify      creatorNotifier
	logger      logger.Interface
}

func NewUpdateRequestUseCase(
	requestRepo request.Repository,
	txManager TransactionRunner,
	populator *Populator,
	userRepo user.Repository,
	notifier Notifier,
	logger logger.Interface,
) *UpdateRequestUseCase {
	return &UpdateRequestUseCase{
		requestRepo: requestRepo,
		txManager:   txManager,
		populator:   populator,
		notify:      creatorNotifier{notifier: notifier, userRepo: userRepo, logger: logger},
		logger:      logger,
	}
}

func (uc *UpdateRequestUseCase) Execute(ctx context.Context, cmd UpdateRequestCommand) (*dto.RequestDTO, error) {
	uc.logger.Infow("executing update request use case", "request_id", cmd.ID, "actor_id", cmd.ActorID)

	update, err := cmd.toUpdate()
	if err != nil {
		return nil, err
	}

	var (
		req      *request.Request
		appended []request.HistoryEntry
	)
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		req, err = uc.requestRepo.GetByID(txCtx, cmd.ID)
		if err != nil {
			return err
		}
		appended, err = req.ApplyUpdate(update, cmd.ActorID, time.Now().UTC())
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		return uc.requestRepo.Update(txCtx, req)
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to update request", "error", err, "request_id", cmd.ID)
		}
		return nil, err
	}

	uc.logger.Infow("request updated", "request_id", req.ID(), "changes", len(appended))

	if change, ok := request.StatusTransition(appended); ok {
		uc.notify.statusChanged(ctx, req, cmd.ActorID, change)
	}

	return uc.populator.PopulateOne(ctx, req, cmd.Lang)
}

func (cmd UpdateRequestCommand) toUpdate() (request.Update, error) {
	u := request.Update{
		Title:        cmd.Title,
		Content:      cmd.Content,
		Reporter:     cmd.Reporter,
		ParentSet:    cmd.ParentSet,
		ParentID:     cmd.ParentID,
		CustomFields: cmd.CustomFields,
	}
	if cmd.Status != nil {
		s, err := vo.ParseStatus(*cmd.Status)
		if err != nil {
			return request.Update{}, errors.NewValidationError(err.Error())
		}
		u.Status = &s
	}
	if cmd.Priority != nil {
		p, err := vo.ParsePriority(*cmd.Priority)
		if err != nil {
			return request.Update{}, errors.NewValidationError(err.Error())
		}
		u.Priority = &p
	}
	u.CustomerIDs = dedupePtr(cmd.CustomerIDs)
	u.TagIDs = dedupePtr(cmd.TagIDs)
	u.RelatedIDs = dedupePtr(cmd.RelatedIDs)
	return u, nil
}

func dedupePtr(ids *[]uint) *[]uint {
	if ids == nil {
		return nil
	}
	out := dedupe(*ids)
	if out == nil {
		out = []uint{}
	}
	return &out
}
