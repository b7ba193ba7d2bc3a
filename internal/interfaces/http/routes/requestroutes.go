package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/reqtrack/reqtrack/internal/interfaces/http/handlers/request"
	"github.com/reqtrack/reqtrack/internal/interfaces/http/handlers/upload"
	"github.com/reqtrack/reqtrack/internal/interfaces/http/middleware"
)

type RequestRouteConfig struct {
	RequestHandler *request.Handler
	UploadHandler  *upload.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupRequestRoutes configures requests, their comments and attachment upload.
func SetupRequestRoutes(api *gin.RouterGroup, cfg *RequestRouteConfig) {
	requests := api.Group("/requests")
	requests.Use(cfg.AuthMiddleware.RequireAuth())
	{
		requests.POST("", cfg.RequestHandler.Create)
		requests.GET("", cfg.RequestHandler.List)

		requests.POST("/similar", cfg.RequestHandler.FindSimilar)
		requests.GET("/stats", cfg.RequestHandler.Stats)

		requests.GET("/:id", cfg.RequestHandler.Get)
		requests.PUT("/:id", cfg.RequestHandler.Update)
		requests.DELETE("/:id", cfg.RequestHandler.Delete)
		requests.POST("/:id/comments", cfg.RequestHandler.AddComment)
		requests.GET("/:id/rendered", cfg.RequestHandler.Rendered)
	}

	api.POST("/upload", cfg.AuthMiddleware.RequireAuth(), cfg.UploadHandler.Upload)
}
