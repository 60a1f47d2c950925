package routes

import (
	"github.com/gin-gonic/gin"

	knowledgeHandlers "github.com/helpdeskhq/helpdesk/internal/interfaces/http/handlers/knowledge"
	"github.com/helpdeskhq/helpdesk/internal/interfaces/http/middleware"
)

type KnowledgeRouteConfig struct {
	KnowledgeHandler     *knowledgeHandlers.KnowledgeHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupKnowledgeRoutes(engine *gin.Engine, cfg *KnowledgeRouteConfig) {
	// Reading the knowledge base is public; no token required.
	articles := engine.Group("/api/knowledge-base")
	{
		articles.GET("", cfg.KnowledgeHandler.ListArticles)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		articles.POST("/:id/helpful", cfg.KnowledgeHandler.MarkHelpful)

		articles.GET("/:id", cfg.KnowledgeHandler.GetArticle)
	}

	protected := engine.Group("/api/knowledge-base")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	{
		protected.POST("",
			cfg.PermissionMiddleware.RequirePermission("knowledge", "create"),
			cfg.KnowledgeHandler.CreateArticle)
		protected.PUT("/:id",
			cfg.PermissionMiddleware.RequirePermission("knowledge", "update_own"),
			cfg.KnowledgeHandler.UpdateArticle)
		protected.DELETE("/:id",
			cfg.PermissionMiddleware.RequirePermission("knowledge", "delete_own"),
			cfg.KnowledgeHandler.DeleteArticle)
	}
}
