package usecases

import (
	"context"
	"time"

	"github.com/reqtrack/reqtrack/internal/application/request/dto"
	"github.com/reqtrack/reqtrack/internal/domain/request"
	"github.com/reqtrack/reqtrack/internal/domain/user"
	"github.com/reqtrack/reqtrack/internal/shared/errors"
	"github.com/reqtrack/reqtrack/internal/shared/i18n"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

type AddCommentCommand struct {
	RequestID   uint
	AuthorID    uint
	Content     string
	Attachments []string
	Lang        i18n.Lang
}

type AddCommentUseCase struct {
	requestRepo request.Repository
	userRepo    user.Repository
	txManager   TransactionRunner
	populator   *Populator
	notify      creatorNotifier
	logger      logger.Interface
}

func NewAddCommentUseCase(
	requestRepo request.Repository,
	userRepo user.Repository,
	txManager TransactionRunner,
	populator *Populator,
	notifier Notifier,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		populator:   populator,
		notify:      creatorNotifier{notifier: notifier, userRepo: userRepo, logger: logger},
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.RequestDTO, error) {
	uc.logger.Infow("executing add comment use case", "request_id", cmd.RequestID, "author_id", cmd.AuthorID)

	author, err := uc.userRepo.GetByID(ctx, cmd.AuthorID)
	if err != nil {
		return nil, err
	}

	var req *request.Request
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		req, err = uc.requestRepo.GetByID(txCtx, cmd.RequestID)
		if err != nil {
			return err
		}
		if _, err := req.AddComment(cmd.Content, cmd.AuthorID, cmd.Attachments, time.Now().UTC()); err != nil {
			return errors.NewValidationError(err.Error())
		}
		return uc.requestRepo.Update(txCtx, req)
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to add comment", "error", err, "request_id", cmd.RequestID)
		}
		return nil, err
	}

	uc.notify.commentAdded(ctx, req, author, cmd.Content)

	return uc.populator.PopulateOne(ctx, req, cmd.Lang)
}
