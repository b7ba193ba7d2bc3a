package http

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/reqtrack/reqtrack/internal/infrastructure/storage"
	"github.com/reqtrack/reqtrack/internal/interfaces/http/middleware"
	"github.com/reqtrack/reqtrack/internal/interfaces/http/routes"

	_ "github.com/reqtrack/reqtrack/docs"
)

// Router owns the gin engine and the container that feeds it.
type Router struct {
	*Container
}

// NewRouter wraps a built container.
func NewRouter(c *Container) *Router {
	return &Router{Container: c}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.hdlrs.health.Check)
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if r.svcs.localDir != "" {
		r.engine.Static(storage.PublicPrefix, r.svcs.localDir)
	}

	r.engine.MaxMultipartMemory = int64(r.cfg.Storage.MaxUploadMB) << 20

	api := r.engine.Group("/api")

	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler:    r.hdlrs.user,
		AuthMiddleware: r.authMiddleware,
		Enforcer:       r.enforcer,
		RateLimiter:    r.rateLimiter,
	})
	routes.SetupCustomerRoutes(api, &routes.CustomerRouteConfig{
		CustomerHandler: r.hdlrs.customer,
		AuthMiddleware:  r.authMiddleware,
	})
	routes.SetupTagRoutes(api, &routes.TagRouteConfig{
		TagHandler:     r.hdlrs.tag,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupRequestRoutes(api, &routes.RequestRouteConfig{
		RequestHandler: r.hdlrs.request,
		UploadHandler:  r.hdlrs.upload,
		AuthMiddleware: r.authMiddleware,
	})
}
