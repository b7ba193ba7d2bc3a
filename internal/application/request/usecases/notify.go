package usecases

import (
	"context"

	"github.com/reqtrack/reqtrack/internal/domain/request"
	"github.com/reqtrack/reqtrack/internal/domain/user"
	"github.com/reqtrack/reqtrack/internal/shared/goroutine"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

// creatorNotifier mails the creator of a request in the background. Nothing
// is sent when notifier is nil or the actor is the creator.
type creatorNotifier struct {
	notifier Notifier
	userRepo user.Repository
	logger   logger.Interface
}

func (n creatorNotifier) enabled(req *request.Request, actorID uint) bool {
	return n.notifier != nil && req.CreatedBy() != actorID
}

func (n creatorNotifier) dispatch(ctx context.Context, task string, req *request.Request, send func(to string) error) {
	creatorID, requestID := req.CreatedBy(), req.ID()
	goroutine.Detach(ctx, n.logger, task, 0, func(ctx context.Context) error {
		creator, err := n.userRepo.GetByID(ctx, creatorID)
		if err != nil {
			n.logger.Warnw("skipping notification, creator not found", "request_id", requestID, "user_id", creatorID)
			return nil
		}
		return send(creator.Email())
	}, "request_id", requestID)
}

func (n creatorNotifier) statusChanged(ctx context.Context, req *request.Request, actorID uint, change request.StatusChange) {
	if !n.enabled(req, actorID) {
		return
	}
	id, number, title := req.ID(), req.Number(), req.Title()
	n.dispatch(ctx, "notify_status_changed", req, func(to string) error {
		return n.notifier.SendStatusChanged(to, id, number, title, change.Old.Label(), change.New.Label())
	})
}

func (n creatorNotifier) commentAdded(ctx context.Context, req *request.Request, author *user.User, content string) {
	if !n.enabled(req, author.ID()) {
		return
	}
	id, number, title, name := req.ID(), req.Number(), req.Title(), author.Name()
	n.dispatch(ctx, "notify_comment_added", req, func(to string) error {
		return n.notifier.SendCommentAdded(to, id, number, title, name, content)
	})
}
