package routes

import (
	"github.com/gin-gonic/gin"

	userHandlers "github.com/helpdeskhq/helpdesk/internal/interfaces/http/handlers/user"
	"github.com/helpdeskhq/helpdesk/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for user management routes.
type UserRouteConfig struct {
	UserHandler          *userHandlers.UserHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupUserRoutes configures admin-only user management routes.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	users := engine.Group("/api/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.GET("",
			cfg.PermissionMiddleware.RequirePermission("user", "read"),
			cfg.UserHandler.ListUsers)

		users.GET("/:id",
			cfg.PermissionMiddleware.RequirePermission("user", "read"),
			cfg.UserHandler.GetUser)
		users.PUT("/:id",
			cfg.PermissionMiddleware.RequirePermission("user", "update"),
			cfg.UserHandler.UpdateUser)
		users.DELETE("/:id",
			cfg.PermissionMiddleware.RequirePermission("user", "delete"),
			cfg.UserHandler.DeleteUser)
	}
}
