package knowledge

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/helpdeskhq/helpdesk/internal/application/knowledge/usecases"
	"github.com/helpdeskhq/helpdesk/internal/shared/authorization"
	"github.com/helpdeskhq/helpdesk/internal/shared/constants"
	"github.com/helpdeskhq/helpdesk/internal/shared/errors"
	"github.com/helpdeskhq/helpdesk/internal/shared/logger"
	"github.com/helpdeskhq/helpdesk/internal/shared/utils"
)

type KnowledgeHandler struct {
	createArticleUC usecases.CreateArticleExecutor
	getArticleUC    usecases.GetArticleExecutor
	listArticlesUC  usecases.ListArticlesExecutor
	updateArticleUC usecases.UpdateArticleExecutor
	deleteArticleUC usecases.DeleteArticleExecutor
	markHelpfulUC   usecases.MarkHelpfulExecutor
	logger          logger.Interface
}

func NewKnowledgeHandler(
	createArticleUC usecases.CreateArticleExecutor,
	getArticleUC usecases.GetArticleExecutor,
	listArticlesUC usecases.ListArticlesExecutor,
	updateArticleUC usecases.UpdateArticleExecutor,
	deleteArticleUC usecases.DeleteArticleExecutor,
	markHelpfulUC usecases.MarkHelpfulExecutor,
	log logger.Interface,
) *KnowledgeHandler {
	return &KnowledgeHandler{
		createArticleUC: createArticleUC,
		getArticleUC:    getArticleUC,
		listArticlesUC:  listArticlesUC,
		updateArticleUC: updateArticleUC,
		deleteArticleUC: deleteArticleUC,
		markHelpfulUC:   markHelpfulUC,
		logger:          log,
	}
}

// CreateArticle handles POST /api/knowledge-base
func (h *KnowledgeHandler) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create article", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	authorID := c.GetUint(constants.ContextKeyUserID)

	result, err := h.createArticleUC.Execute(c.Request.Context(), req.ToCommand(authorID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Article created successfully")
}

// GetArticle handles GET /api/knowledge-base/:id
func (h *KnowledgeHandler) GetArticle(c *gin.Context) {
	articleID, err := parseArticleID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getArticleUC.Execute(c.Request.Context(), usecases.GetArticleQuery{ArticleID: articleID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListArticles handles GET /api/knowledge-base
func (h *KnowledgeHandler) ListArticles(c *gin.Context) {
	req := parseListArticlesRequest(c)

	result, err := h.listArticlesUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Articles, result.Total, result.Page, result.PageSize)
}

// UpdateArticle handles PUT /api/knowledge-base/:id
func (h *KnowledgeHandler) UpdateArticle(c *gin.Context) {
	articleID, err := parseArticleID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update article", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := req.ToCommand(articleID, c.GetUint(constants.ContextKeyUserID), callerRole(c))

	result, err := h.updateArticleUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Article updated successfully", result)
}

// DeleteArticle handles DELETE /api/knowledge-base/:id
func (h *KnowledgeHandler) DeleteArticle(c *gin.Context) {
	articleID, err := parseArticleID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteArticleCommand{
		ArticleID: articleID,
		UserID:    c.GetUint(constants.ContextKeyUserID),
		UserRole:  callerRole(c),
	}

	if err := h.deleteArticleUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// MarkHelpful handles POST /api/knowledge-base/:id/helpful
func (h *KnowledgeHandler) MarkHelpful(c *gin.Context) {
	articleID, err := parseArticleID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.markHelpfulUC.Execute(c.Request.Context(), usecases.MarkHelpfulCommand{ArticleID: articleID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func parseArticleID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid article ID")
	}
	return uint(id), nil
}

func callerRole(c *gin.Context) authorization.UserRole {
	return authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))
}
