package ticket

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdeskhq/helpdesk/internal/application/ticket/usecases"
	"github.com/helpdeskhq/helpdesk/internal/shared/authorization"
	"github.com/helpdeskhq/helpdesk/internal/shared/constants"
	"github.com/helpdeskhq/helpdesk/internal/shared/errors"
	"github.com/helpdeskhq/helpdesk/internal/shared/logger"
)

type mockCreateTicketUC struct {
	executeFunc func(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error)
}

func (m *mockCreateTicketUC) Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	if m.executeFunc != nil {
		return m.executeFunc(ctx, cmd)
	}
	return &usecases.CreateTicketResult{
		TicketID:  1,
		Status:    "open",
		CreatedAt: time.Now(),
	}, nil
}

type mockGetTicketUC struct {
	executeFunc func(ctx context.Context, query usecases.GetTicketQuery) (*usecases.TicketDTO, error)
}

func (m *mockGetTicketUC) Execute(ctx context.Context, query usecases.GetTicketQuery) (*usecases.TicketDTO, error) {
	if m.executeFunc != nil {
		return m.executeFunc(ctx, query)
	}
	return &usecases.TicketDTO{
		ID:          query.TicketID,
		Title:       "VPN keeps disconnecting",
		Description: "Drops every few minutes",
		Priority:    "high",
		Status:      "open",
		RequesterID: 1,
	}, nil
}

type mockListTicketsUC struct {
	executeFunc func(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error)
}

func (m *mockListTicketsUC) Execute(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	if m.executeFunc != nil {
		return m.executeFunc(ctx, query)
	}
	return &usecases.ListTicketsResult{
		Tickets:  []*usecases.TicketDTO{},
		Total:    0,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}

type mockUpdateTicketUC struct {
	executeFunc func(ctx context.Context, cmd usecases.UpdateTicketCommand) (*usecases.TicketDTO, error)
}

func (m *mockUpdateTicketUC) Execute(ctx context.Context, cmd usecases.UpdateTicketCommand) (*usecases.TicketDTO, error) {
	if m.executeFunc != nil {
		return m.executeFunc(ctx, cmd)
	}
	return &usecases.TicketDTO{ID: cmd.TicketID, Status: "open"}, nil
}

type mockDeleteTicketUC struct {
	executeFunc func(ctx context.Context, cmd usecases.DeleteTicketCommand) error
}

func (m *mockDeleteTicketUC) Execute(ctx context.Context, cmd usecases.DeleteTicketCommand) error {
	if m.executeFunc != nil {
		return m.executeFunc(ctx, cmd)
	}
	return nil
}

type mockTakeTicketUC struct {
	executeFunc func(ctx context.Context, cmd usecases.TakeTicketCommand) (*usecases.TicketDTO, error)
}

func (m *mockTakeTicketUC) Execute(ctx context.Context, cmd usecases.TakeTicketCommand) (*usecases.TicketDTO, error) {
	if m.executeFunc != nil {
		return m.executeFunc(ctx, cmd)
	}
	agentID := cmd.AgentID
	return &usecases.TicketDTO{ID: cmd.TicketID, Status: "in_progress", AssigneeID: &agentID}, nil
}

type handlerMocks struct {
	create *mockCreateTicketUC
	get    *mockGetTicketUC
	list   *mockListTicketsUC
	update *mockUpdateTicketUC
	delete *mockDeleteTicketUC
	take   *mockTakeTicketUC
}

func setupTestRouter(role authorization.UserRole) (*gin.Engine, *handlerMocks) {
	gin.SetMode(gin.TestMode)

	mocks := &handlerMocks{
		create: &mockCreateTicketUC{},
		get:    &mockGetTicketUC{},
		list:   &mockListTicketsUC{},
		update: &mockUpdateTicketUC{},
		delete: &mockDeleteTicketUC{},
		take:   &mockTakeTicketUC{},
	}

	handler := NewTicketHandler(
		mocks.create,
		mocks.get,
		mocks.list,
		mocks.update,
		mocks.delete,
		mocks.take,
		logger.NewLogger(),
	)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, uint(1))
		c.Set(constants.ContextKeyUserRole, string(role))
		c.Next()
	})

	router.POST("/api/tickets", handler.CreateTicket)
	router.GET("/api/tickets", handler.ListTickets)
	router.GET("/api/tickets/:id", handler.GetTicket)
	router.PUT("/api/tickets/:id", handler.UpdateTicket)
	router.DELETE("/api/tickets/:id", handler.DeleteTicket)
	router.POST("/api/tickets/:id/take", handler.TakeTicket)

	return router, mocks
}

func TestCreateTicket_Success(t *testing.T) {
	router, mocks := setupTestRouter(authorization.RoleUser)

	var captured usecases.CreateTicketCommand
	mocks.create.executeFunc = func(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
		captured = cmd
		return &usecases.CreateTicketResult{TicketID: 42, Status: "open", CreatedAt: time.Now()}, nil
	}

	reqBody := CreateTicketRequest{
		Title:       "Printer offline",
		Description: "Second floor printer shows offline for everyone",
		Priority:    "high",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/tickets", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(1), captured.RequesterID)
	assert.Equal(t, "high", captured.Priority)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.True(t, response["success"].(bool))
	assert.Equal(t, "Ticket created successfully", response["message"])
	assert.NotNil(t, response["data"])
}

func TestCreateTicket_MissingTitle(t *testing.T) {
	router, _ := setupTestRouter(authorization.RoleUser)

	bodyBytes := []byte(`{"description": "no title here"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/tickets", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTicket_InvalidID(t *testing.T) {
	router, _ := setupTestRouter(authorization.RoleUser)

	req := httptest.NewRequest(http.MethodGet, "/api/tickets/abc", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTicket_NotFound(t *testing.T) {
	router, mocks := setupTestRouter(authorization.RoleUser)

	mocks.get.executeFunc = func(ctx context.Context, query usecases.GetTicketQuery) (*usecases.TicketDTO, error) {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/tickets/99", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListTickets_PassesIdentityAndFilters(t *testing.T) {
	router, mocks := setupTestRouter(authorization.RoleAgent)

	var captured usecases.ListTicketsQuery
	mocks.list.executeFunc = func(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
		captured = query
		return &usecases.ListTicketsResult{Tickets: []*usecases.TicketDTO{}, Page: query.Page, PageSize: query.PageSize}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/api/tickets?status=open&priority=high&unassigned=true&page=2&limit=10", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(1), captured.UserID)
	assert.Equal(t, authorization.RoleAgent, captured.UserRole)
	assert.Equal(t, "open", captured.Status)
	assert.Equal(t, "high", captured.Priority)
	require.NotNil(t, captured.Unassigned)
	assert.True(t, *captured.Unassigned)
	assert.Equal(t, 2, captured.Page)
	assert.Equal(t, 10, captured.PageSize)
}

func TestListTickets_InvalidAssigneeID(t *testing.T) {
	router, _ := setupTestRouter(authorization.RoleAgent)

	req := httptest.NewRequest(http.MethodGet, "/api/tickets?assignee_id=abc", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateTicket_ForwardsStaffFields(t *testing.T) {
	router, mocks := setupTestRouter(authorization.RoleAgent)

	var captured usecases.UpdateTicketCommand
	mocks.update.executeFunc = func(ctx context.Context, cmd usecases.UpdateTicketCommand) (*usecases.TicketDTO, error) {
		captured = cmd
		return &usecases.TicketDTO{ID: cmd.TicketID, Status: "resolved"}, nil
	}

	bodyBytes := []byte(`{"status": "resolved", "resolution_notes": "Replaced the toner cartridge"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/tickets/7", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), captured.TicketID)
	assert.Equal(t, authorization.RoleAgent, captured.UserRole)
	require.NotNil(t, captured.Status)
	assert.Equal(t, "resolved", *captured.Status)
	require.NotNil(t, captured.ResolutionNotes)
	assert.Equal(t, "Replaced the toner cartridge", *captured.ResolutionNotes)
}

func TestTakeTicket_Conflict(t *testing.T) {
	router, mocks := setupTestRouter(authorization.RoleAgent)

	mocks.take.executeFunc = func(ctx context.Context, cmd usecases.TakeTicketCommand) (*usecases.TicketDTO, error) {
		return nil, errors.NewConflictError("ticket is already assigned to Dana Lee")
	}

	req := httptest.NewRequest(http.MethodPost, "/api/tickets/5/take", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	errInfo := response["error"].(map[string]interface{})
	assert.Contains(t, errInfo["message"], "Dana Lee")
}

func TestDeleteTicket_Success(t *testing.T) {
	router, mocks := setupTestRouter(authorization.RoleUser)

	var captured usecases.DeleteTicketCommand
	mocks.delete.executeFunc = func(ctx context.Context, cmd usecases.DeleteTicketCommand) error {
		captured = cmd
		return nil
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/tickets/3", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, uint(3), captured.TicketID)
	assert.Equal(t, uint(1), captured.UserID)
}
