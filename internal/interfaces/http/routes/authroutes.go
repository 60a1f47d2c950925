// Package routes provides HTTP route configurations.
package routes

import (
	"github.com/gin-gonic/gin"

	authHandlers "github.com/helpdeskhq/helpdesk/internal/interfaces/http/handlers/auth"
	"github.com/helpdeskhq/helpdesk/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *authHandlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter // may be nil when rate limiting is disabled
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/api/auth")
	{
		auth.POST("/register", limited(cfg.RateLimiter, cfg.AuthHandler.Register)...)
		auth.POST("/login", limited(cfg.RateLimiter, cfg.AuthHandler.Login)...)
		auth.GET("/verify", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.GetCurrentUser)
	}
}

func limited(rl *middleware.RateLimiter, handler gin.HandlerFunc) []gin.HandlerFunc {
	if rl == nil {
		return []gin.HandlerFunc{handler}
	}
	return []gin.HandlerFunc{rl.Limit(), handler}
}
