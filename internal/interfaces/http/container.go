package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/reqtrack/reqtrack/internal/infrastructure/config"
	"github.com/reqtrack/reqtrack/internal/infrastructure/permission"
	"github.com/reqtrack/reqtrack/internal/interfaces/http/middleware"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

// Container holds infrastructure, repositories, use cases and handlers and
// wires them together.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client // nil when redis is disabled

	repos *repositories
	svcs  *services
	ucs   *allUseCases
	hdlrs *allHandlers

	enforcer       *permission.Enforcer
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter // nil when rate limiting is off
}

// NewContainer builds every component. redisClient may be nil.
func NewContainer(ctx context.Context, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
		redis:  redisClient,
	}

	c.repos = newRepositories(db, log)

	svcs, err := c.newServices(ctx)
	if err != nil {
		return nil, err
	}
	c.svcs = svcs

	c.ucs = c.newUseCases()
	c.hdlrs = c.newHandlers()

	if err := c.initMiddleware(); err != nil {
		return nil, err
	}

	return c, nil
}

// Engine exposes the gin engine for the HTTP server.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases resources owned by the container. The database and redis
// client belong to the caller.
func (c *Container) Shutdown() {
	c.log.Infow("http container shut down")
}
