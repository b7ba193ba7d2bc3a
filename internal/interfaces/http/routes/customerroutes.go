package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/reqtrack/reqtrack/internal/interfaces/http/handlers/customer"
	"github.com/reqtrack/reqtrack/internal/interfaces/http/middleware"
)

type CustomerRouteConfig struct {
	CustomerHandler *customer.Handler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupCustomerRoutes(api *gin.RouterGroup, cfg *CustomerRouteConfig) {
	customers := api.Group("/customers")
	customers.Use(cfg.AuthMiddleware.RequireAuth())
	{
		customers.POST("", cfg.CustomerHandler.Create)
		customers.GET("", cfg.CustomerHandler.List)

		// Specific named endpoints (must come BEFORE /:id to avoid conflicts)
		customers.GET("/search", cfg.CustomerHandler.Search)

		customers.GET("/:id", cfg.CustomerHandler.Get)
		customers.PUT("/:id", cfg.CustomerHandler.Update)
		customers.DELETE("/:id", cfg.CustomerHandler.Delete)
	}
}
