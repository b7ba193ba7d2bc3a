package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/reqtrack/reqtrack/internal/infrastructure/permission"
	"github.com/reqtrack/reqtrack/internal/interfaces/http/handlers/user"
	"github.com/reqtrack/reqtrack/internal/interfaces/http/middleware"
	"github.com/reqtrack/reqtrack/internal/shared/authorization"
)

// UserRouteConfig holds dependencies for account routes.
type UserRouteConfig struct {
	UserHandler    *user.Handler
	AuthMiddleware *middleware.AuthMiddleware
	Enforcer       authorization.Enforcer
	RateLimiter    *middleware.RateLimiter // may be nil
}

// SetupUserRoutes configures registration, login and user listing.
func SetupUserRoutes(api *gin.RouterGroup, cfg *UserRouteConfig) {
	public := []gin.HandlerFunc{}
	if cfg.RateLimiter != nil {
		public = append(public, cfg.RateLimiter.Limit())
	}

	users := api.Group("/users")
	{
		users.POST("", append(public, cfg.UserHandler.Register)...)
		users.POST("/login", append(public, cfg.UserHandler.Login)...)

		users.GET("/profile", cfg.AuthMiddleware.RequireAuth(), cfg.UserHandler.GetProfile)
		users.GET("",
			cfg.AuthMiddleware.RequireAuth(),
			authorization.RequirePermission(cfg.Enforcer, permission.ResourceUsers, permission.ActionList),
			cfg.UserHandler.ListUsers,
		)
	}
}
