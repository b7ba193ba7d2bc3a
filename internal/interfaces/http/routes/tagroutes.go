package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/reqtrack/reqtrack/internal/interfaces/http/handlers/tag"
	"github.com/reqtrack/reqtrack/internal/interfaces/http/middleware"
)

type TagRouteConfig struct {
	TagHandler     *tag.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTagRoutes(api *gin.RouterGroup, cfg *TagRouteConfig) {
	tags := api.Group("/tags")
	tags.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tags.POST("", cfg.TagHandler.Create)
		tags.GET("", cfg.TagHandler.List)

		tags.GET("/stats", cfg.TagHandler.Stats)
		tags.GET("/category/:category", cfg.TagHandler.ByCategory)

		tags.GET("/:id", cfg.TagHandler.Get)
		tags.PUT("/:id", cfg.TagHandler.Update)
		tags.DELETE("/:id", cfg.TagHandler.Delete)
	}
}
