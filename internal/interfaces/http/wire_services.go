package http

import (
	"context"
	"fmt"

	"github.com/reqtrack/reqtrack/internal/application/request/usecases"
	uploadUsecases "github.com/reqtrack/reqtrack/internal/application/upload/usecases"
	"github.com/reqtrack/reqtrack/internal/domain/request"
	"github.com/reqtrack/reqtrack/internal/infrastructure/auth"
	"github.com/reqtrack/reqtrack/internal/infrastructure/email"
	"github.com/reqtrack/reqtrack/internal/infrastructure/sequence"
	"github.com/reqtrack/reqtrack/internal/infrastructure/storage"
	sharedConfig "github.com/reqtrack/reqtrack/internal/shared/config"
	"github.com/reqtrack/reqtrack/internal/shared/db"
	"github.com/reqtrack/reqtrack/internal/shared/services/markdown"
)

type services struct {
	hasher    *auth.BcryptPasswordHasher
	jwt       *auth.JWTService
	txManager *db.TransactionManager
	sequences request.SequenceAllocator
	notifier  usecases.Notifier // nil when email is disabled
	storage   uploadUsecases.Storage
	localDir  string // set only for the local storage driver
	renderer  markdown.Renderer
}

func (c *Container) newServices(ctx context.Context) (*services, error) {
	s := &services{
		hasher:    auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost),
		jwt:       auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.ExpDays),
		txManager: db.NewTransactionManager(c.db),
		renderer:  markdown.NewRenderer(),
	}

	switch c.cfg.Sequence.Backend {
	case sharedConfig.SequenceBackendRedis:
		if c.redis == nil {
			return nil, fmt.Errorf("sequence backend %q requires redis.enabled", sharedConfig.SequenceBackendRedis)
		}
		s.sequences = sequence.NewRedisAllocator(c.redis, c.repos.request.MaxSequence)
	default:
		s.sequences = sequence.NewDBAllocator(c.db)
	}
	c.log.Infow("sequence allocator selected", "backend", c.cfg.Sequence.Backend)

	if c.cfg.Email.Enabled {
		s.notifier = email.NewSMTPEmailService(email.ConfigFrom(c.cfg.Email, c.cfg.Server.BaseURL))
		c.log.Infow("email notifications enabled", "smtp_host", c.cfg.Email.SMTPHost)
	}

	switch c.cfg.Storage.Driver {
	case sharedConfig.StorageDriverMinIO:
		st, err := storage.NewMinIOStorage(ctx, c.cfg.Storage.MinIO, c.log)
		if err != nil {
			return nil, fmt.Errorf("failed to init minio storage: %w", err)
		}
		s.storage = st
	default:
		st, err := storage.NewLocalStorage(c.cfg.Storage.UploadDir)
		if err != nil {
			return nil, fmt.Errorf("failed to init local storage: %w", err)
		}
		s.storage = st
		s.localDir = st.Dir()
	}
	c.log.Infow("upload storage selected", "driver", c.cfg.Storage.Driver)

	return s, nil
}
