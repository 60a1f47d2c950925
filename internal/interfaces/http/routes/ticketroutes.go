package routes

import (
	"github.com/gin-gonic/gin"

	ticketHandlers "github.com/helpdeskhq/helpdesk/internal/interfaces/http/handlers/ticket"
	"github.com/helpdeskhq/helpdesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *ticketHandlers.TicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	tickets := engine.Group("/api/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.POST("",
			cfg.PermissionMiddleware.RequirePermission("ticket", "create"),
			cfg.TicketHandler.CreateTicket)
		tickets.GET("",
			cfg.PermissionMiddleware.RequirePermission("ticket", "read_own"),
			cfg.TicketHandler.ListTickets)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.POST("/:id/take",
			cfg.PermissionMiddleware.RequirePermission("ticket", "take"),
			cfg.TicketHandler.TakeTicket)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id",
			cfg.PermissionMiddleware.RequirePermission("ticket", "read_own"),
			cfg.TicketHandler.GetTicket)
		tickets.PUT("/:id",
			cfg.PermissionMiddleware.RequirePermission("ticket", "update_own"),
			cfg.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id",
			cfg.PermissionMiddleware.RequirePermission("ticket", "delete_own"),
			cfg.TicketHandler.DeleteTicket)
	}
}
