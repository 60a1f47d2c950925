package knowledge

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdeskhq/helpdesk/internal/application/knowledge/usecases"
	"github.com/helpdeskhq/helpdesk/internal/shared/authorization"
	"github.com/helpdeskhq/helpdesk/internal/shared/constants"
	"github.com/helpdeskhq/helpdesk/internal/shared/errors"
	"github.com/helpdeskhq/helpdesk/internal/shared/logger"
)

type mockCreateArticleUC struct {
	executeFunc func(ctx context.Context, cmd usecases.CreateArticleCommand) (*usecases.ArticleDTO, error)
}

func (m *mockCreateArticleUC) Execute(ctx context.Context, cmd usecases.CreateArticleCommand) (*usecases.ArticleDTO, error) {
	if m.executeFunc != nil {
		return m.executeFunc(ctx, cmd)
	}
	return &usecases.ArticleDTO{ID: 1, Title: cmd.Title, Category: cmd.Category, AuthorID: cmd.AuthorID}, nil
}

type mockGetArticleUC struct {
	executeFunc func(ctx context.Context, query usecases.GetArticleQuery) (*usecases.ArticleDTO, error)
}

func (m *mockGetArticleUC) Execute(ctx context.Context, query usecases.GetArticleQuery) (*usecases.ArticleDTO, error) {
	if m.executeFunc != nil {
		return m.executeFunc(ctx, query)
	}
	return &usecases.ArticleDTO{ID: query.ArticleID, Title: "Reset your VPN profile"}, nil
}

type mockListArticlesUC struct {
	executeFunc func(ctx context.Context, query usecases.ListArticlesQuery) (*usecases.ListArticlesResult, error)
}

func (m *mockListArticlesUC) Execute(ctx context.Context, query usecases.ListArticlesQuery) (*usecases.ListArticlesResult, error) {
	if m.executeFunc != nil {
		return m.executeFunc(ctx, query)
	}
	return &usecases.ListArticlesResult{Articles: []*usecases.ArticleDTO{}, Page: query.Page, PageSize: query.PageSize}, nil
}

type mockUpdateArticleUC struct {
	executeFunc func(ctx context.Context, cmd usecases.UpdateArticleCommand) (*usecases.ArticleDTO, error)
}

func (m *mockUpdateArticleUC) Execute(ctx context.Context, cmd usecases.UpdateArticleCommand) (*usecases.ArticleDTO, error) {
	if m.executeFunc != nil {
		return m.executeFunc(ctx, cmd)
	}
	return &usecases.ArticleDTO{ID: cmd.ArticleID}, nil
}

type mockDeleteArticleUC struct {
	executeFunc func(ctx context.Context, cmd usecases.DeleteArticleCommand) error
}

func (m *mockDeleteArticleUC) Execute(ctx context.Context, cmd usecases.DeleteArticleCommand) error {
	if m.executeFunc != nil {
		return m.executeFunc(ctx, cmd)
	}
	return nil
}

type mockMarkHelpfulUC struct {
	executeFunc func(ctx context.Context, cmd usecases.MarkHelpfulCommand) (*usecases.MarkHelpfulResult, error)
}

func (m *mockMarkHelpfulUC) Execute(ctx context.Context, cmd usecases.MarkHelpfulCommand) (*usecases.MarkHelpfulResult, error) {
	if m.executeFunc != nil {
		return m.executeFunc(ctx, cmd)
	}
	return &usecases.MarkHelpfulResult{ArticleID: cmd.ArticleID, HelpfulCount: 1}, nil
}

type articleMocks struct {
	create      *mockCreateArticleUC
	get         *mockGetArticleUC
	list        *mockListArticlesUC
	update      *mockUpdateArticleUC
	delete      *mockDeleteArticleUC
	markHelpful *mockMarkHelpfulUC
}

func setupTestRouter(role authorization.UserRole) (*gin.Engine, *articleMocks) {
	gin.SetMode(gin.TestMode)

	mocks := &articleMocks{
		create:      &mockCreateArticleUC{},
		get:         &mockGetArticleUC{},
		list:        &mockListArticlesUC{},
		update:      &mockUpdateArticleUC{},
		delete:      &mockDeleteArticleUC{},
		markHelpful: &mockMarkHelpfulUC{},
	}

	handler := NewKnowledgeHandler(
		mocks.create,
		mocks.get,
		mocks.list,
		mocks.update,
		mocks.delete,
		mocks.markHelpful,
		logger.NewLogger(),
	)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, uint(1))
		c.Set(constants.ContextKeyUserRole, string(role))
		c.Next()
	})

	router.POST("/api/knowledge-base", handler.CreateArticle)
	router.GET("/api/knowledge-base", handler.ListArticles)
	router.GET("/api/knowledge-base/:id", handler.GetArticle)
	router.PUT("/api/knowledge-base/:id", handler.UpdateArticle)
	router.DELETE("/api/knowledge-base/:id", handler.DeleteArticle)
	router.POST("/api/knowledge-base/:id/helpful", handler.MarkHelpful)

	return router, mocks
}

func TestCreateArticle_Success(t *testing.T) {
	router, mocks := setupTestRouter(authorization.RoleUser)

	var captured usecases.CreateArticleCommand
	mocks.create.executeFunc = func(ctx context.Context, cmd usecases.CreateArticleCommand) (*usecases.ArticleDTO, error) {
		captured = cmd
		return &usecases.ArticleDTO{ID: 10, Title: cmd.Title}, nil
	}

	reqBody := CreateArticleRequest{
		Title:    "Fix VPN disconnects",
		Content:  "## Steps\n1. Reset the profile",
		Category: "network",
		Keywords: []string{"vpn", "remote"},
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/knowledge-base", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(1), captured.AuthorID)
	assert.Equal(t, []string{"vpn", "remote"}, captured.Keywords)
}

func TestCreateArticle_MissingCategory(t *testing.T) {
	router, _ := setupTestRouter(authorization.RoleUser)

	bodyBytes := []byte(`{"title": "No category", "content": "text"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/knowledge-base", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListArticles_PassesSearchQuery(t *testing.T) {
	router, mocks := setupTestRouter(authorization.RoleUser)

	var captured usecases.ListArticlesQuery
	mocks.list.executeFunc = func(ctx context.Context, query usecases.ListArticlesQuery) (*usecases.ListArticlesResult, error) {
		captured = query
		return &usecases.ListArticlesResult{Articles: []*usecases.ArticleDTO{}, Page: query.Page, PageSize: query.PageSize}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/api/knowledge-base?search=vpn&category=network", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "vpn", captured.Search)
	assert.Equal(t, "network", captured.Category)
}

func TestUpdateArticle_Forbidden(t *testing.T) {
	router, mocks := setupTestRouter(authorization.RoleUser)

	mocks.update.executeFunc = func(ctx context.Context, cmd usecases.UpdateArticleCommand) (*usecases.ArticleDTO, error) {
		return nil, errors.NewForbiddenError("only the author or staff may update this article")
	}

	bodyBytes := []byte(`{"title": "New title"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/knowledge-base/4", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMarkHelpful_ReturnsCount(t *testing.T) {
	router, mocks := setupTestRouter(authorization.RoleUser)

	mocks.markHelpful.executeFunc = func(ctx context.Context, cmd usecases.MarkHelpfulCommand) (*usecases.MarkHelpfulResult, error) {
		return &usecases.MarkHelpfulResult{ArticleID: cmd.ArticleID, HelpfulCount: 6}, nil
	}

	req := httptest.NewRequest(http.MethodPost, "/api/knowledge-base/2/helpful", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(6), data["helpful_count"])
}

func TestDeleteArticle_InvalidID(t *testing.T) {
	router, _ := setupTestRouter(authorization.RoleUser)

	req := httptest.NewRequest(http.MethodDelete, "/api/knowledge-base/zero", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
