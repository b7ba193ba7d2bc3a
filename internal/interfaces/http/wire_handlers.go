package http

import (
	"context"
	"time"

	"github.com/reqtrack/reqtrack/internal/infrastructure/permission"
	"github.com/reqtrack/reqtrack/internal/infrastructure/ratelimit"
	customerHandlers "github.com/reqtrack/reqtrack/internal/interfaces/http/handlers/customer"
	"github.com/reqtrack/reqtrack/internal/interfaces/http/handlers/health"
	requestHandlers "github.com/reqtrack/reqtrack/internal/interfaces/http/handlers/request"
	tagHandlers "github.com/reqtrack/reqtrack/internal/interfaces/http/handlers/tag"
	uploadHandlers "github.com/reqtrack/reqtrack/internal/interfaces/http/handlers/upload"
	userHandlers "github.com/reqtrack/reqtrack/internal/interfaces/http/handlers/user"
	"github.com/reqtrack/reqtrack/internal/interfaces/http/middleware"
)

type allHandlers struct {
	user     *userHandlers.Handler
	customer *customerHandlers.Handler
	tag      *tagHandlers.Handler
	request  *requestHandlers.Handler
	upload   *uploadHandlers.Handler
	health   *health.Handler
}

func (c *Container) newHandlers() *allHandlers {
	u, log := c.ucs, c.log

	checks := map[string]health.Pinger{
		"database": func(ctx context.Context) error {
			sqlDB, err := c.db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if c.redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return c.redis.Ping(ctx).Err()
		}
	}

	return &allHandlers{
		user: userHandlers.NewHandler(u.registerUser, u.login, u.getProfile, u.listUsers, log),
		customer: customerHandlers.NewHandler(
			u.createCustomer, u.updateCustomer, u.deleteCustomer,
			u.getCustomer, u.listCustomers, u.searchCustomers, log,
		),
		tag: tagHandlers.NewHandler(
			u.createTag, u.updateTag, u.deleteTag,
			u.getTag, u.listTags, u.listTagsByCategory, u.tagStats, log,
		),
		request: requestHandlers.NewHandler(requestHandlers.HandlerDeps{
			Create:  u.createRequest,
			List:    u.listRequests,
			Get:     u.getRequest,
			Update:  u.updateRequest,
			Delete:  u.deleteRequest,
			Comment: u.addComment,
			Similar: u.findSimilar,
			Stats:   u.requestStats,
			Render:  u.renderRequest,
			Logger:  log,
		}),
		upload: uploadHandlers.NewHandler(u.uploadFile, log),
		health: health.NewHandler(checks, log),
	}
}

func (c *Container) initMiddleware() error {
	c.authMiddleware = middleware.NewAuthMiddleware(c.svcs.jwt, c.log)

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return err
	}
	if err := enforcer.InitDefaultPolicies(); err != nil {
		return err
	}
	c.enforcer = enforcer

	rl := c.cfg.RateLimit
	switch {
	case !rl.Enabled:
	case c.redis == nil:
		c.log.Warnw("rate limiting requested but redis is disabled, skipping")
	default:
		window := time.Duration(rl.WindowSeconds) * time.Second
		c.rateLimiter = middleware.NewRateLimiter(ratelimit.NewRedisRateLimiter(c.redis), "auth", rl.Requests, window, c.log)
	}

	return nil
}
