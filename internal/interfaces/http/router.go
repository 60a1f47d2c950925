// Package http wires use cases, middleware, and routes into a Gin engine.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	knowledgeUC "github.com/helpdeskhq/helpdesk/internal/application/knowledge/usecases"
	ticketUC "github.com/helpdeskhq/helpdesk/internal/application/ticket/usecases"
	userUC "github.com/helpdeskhq/helpdesk/internal/application/user/usecases"
	"github.com/helpdeskhq/helpdesk/internal/domain/shared/events"
	"github.com/helpdeskhq/helpdesk/internal/infrastructure/auth"
	"github.com/helpdeskhq/helpdesk/internal/infrastructure/config"
	"github.com/helpdeskhq/helpdesk/internal/infrastructure/permission"
	"github.com/helpdeskhq/helpdesk/internal/infrastructure/repository"
	authHandlers "github.com/helpdeskhq/helpdesk/internal/interfaces/http/handlers/auth"
	knowledgeHandlers "github.com/helpdeskhq/helpdesk/internal/interfaces/http/handlers/knowledge"
	ticketHandlers "github.com/helpdeskhq/helpdesk/internal/interfaces/http/handlers/ticket"
	userHandlers "github.com/helpdeskhq/helpdesk/internal/interfaces/http/handlers/user"
	"github.com/helpdeskhq/helpdesk/internal/interfaces/http/middleware"
	"github.com/helpdeskhq/helpdesk/internal/interfaces/http/routes"
	shareddb "github.com/helpdeskhq/helpdesk/internal/shared/db"
	"github.com/helpdeskhq/helpdesk/internal/shared/logger"
	"github.com/helpdeskhq/helpdesk/internal/shared/services/markdown"
)

// Router holds the Gin engine and the handler/middleware graph behind it.
type Router struct {
	engine *gin.Engine

	authHandler      *authHandlers.AuthHandler
	ticketHandler    *ticketHandlers.TicketHandler
	knowledgeHandler *knowledgeHandlers.KnowledgeHandler
	userHandler      *userHandlers.UserHandler

	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter

	logger logger.Interface
}

// NewRouter builds the full HTTP dependency graph. redisClient may be nil,
// in which case rate limiting is skipped.
func NewRouter(
	db *gorm.DB,
	dispatcher *events.InMemoryEventDispatcher,
	enforcer *permission.Enforcer,
	redisClient *redis.Client,
	cfg *config.Config,
	log logger.Interface,
) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(db, log)
	ticketRepo := repository.NewTicketRepository(db)
	articleRepo := repository.NewKnowledgeRepository(db)

	txMgr := shareddb.NewTransactionManager(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	renderer := markdown.NewMarkdownService()

	registerUC := userUC.NewRegisterUseCase(userRepo, hasher, jwtService, log)
	loginUC := userUC.NewLoginUseCase(userRepo, hasher, jwtService, log)
	getUserUC := userUC.NewGetUserUseCase(userRepo, log)
	listUsersUC := userUC.NewListUsersUseCase(userRepo, log)
	updateUserUC := userUC.NewUpdateUserUseCase(userRepo, log)
	deleteUserUC := userUC.NewDeleteUserUseCase(userRepo, log)

	createTicketUC := ticketUC.NewCreateTicketUseCase(ticketRepo, dispatcher, log)
	getTicketUC := ticketUC.NewGetTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketUC.NewListTicketsUseCase(ticketRepo, log)
	updateTicketUC := ticketUC.NewUpdateTicketUseCase(ticketRepo, userRepo, dispatcher, log)
	deleteTicketUC := ticketUC.NewDeleteTicketUseCase(ticketRepo, log)
	takeTicketUC := ticketUC.NewTakeTicketUseCase(ticketRepo, userRepo, txMgr, dispatcher, log)

	createArticleUC := knowledgeUC.NewCreateArticleUseCase(articleRepo, log)
	getArticleUC := knowledgeUC.NewGetArticleUseCase(articleRepo, renderer, log)
	listArticlesUC := knowledgeUC.NewListArticlesUseCase(articleRepo, log)
	updateArticleUC := knowledgeUC.NewUpdateArticleUseCase(articleRepo, log)
	deleteArticleUC := knowledgeUC.NewDeleteArticleUseCase(articleRepo, log)
	markHelpfulUC := knowledgeUC.NewMarkHelpfulUseCase(articleRepo, log)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled && redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit.RequestsPerMinute, time.Minute)
	}

	return &Router{
		engine:           engine,
		authHandler:      authHandlers.NewAuthHandler(registerUC, loginUC, getUserUC, log),
		ticketHandler:    ticketHandlers.NewTicketHandler(createTicketUC, getTicketUC, listTicketsUC, updateTicketUC, deleteTicketUC, takeTicketUC, log),
		knowledgeHandler: knowledgeHandlers.NewKnowledgeHandler(createArticleUC, getArticleUC, listArticlesUC, updateArticleUC, deleteArticleUC, markHelpfulUC, log),
		userHandler:      userHandlers.NewUserHandler(getUserUC, listUsersUC, updateUserUC, deleteUserUC, log),

		authMiddleware:       middleware.NewAuthMiddleware(jwtService, log),
		permissionMiddleware: middleware.NewPermissionMiddleware(enforcer, log),
		rateLimiter:          rateLimiter,

		logger: log,
	}
}

// SetupRoutes configures global middleware and all route groups.
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:        r.ticketHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupKnowledgeRoutes(r.engine, &routes.KnowledgeRouteConfig{
		KnowledgeHandler:     r.knowledgeHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:          r.userHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
