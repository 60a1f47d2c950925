package auth

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

	"github.com/helpdeskhq/helpdesk/internal/application/user/usecases"
	"github.com/helpdeskhq/helpdesk/internal/shared/constants"
	"github.com/helpdeskhq/helpdesk/internal/shared/errors"
	"github.com/helpdeskhq/helpdesk/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockRegisterUC struct {
	executeFunc func(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.AuthResult, error)
}

func (m *mockRegisterUC) Execute(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.AuthResult, error) {
	if m.executeFunc != nil {
		return m.executeFunc(ctx, cmd)
	}
	return &usecases.AuthResult{Token: "token", User: &usecases.UserDTO{ID: 1}}, nil
}

type mockLoginUC struct {
	executeFunc func(ctx context.Context, cmd usecases.LoginCommand) (*usecases.AuthResult, error)
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.AuthResult, error) {
	if m.executeFunc != nil {
		return m.executeFunc(ctx, cmd)
	}
	return &usecases.AuthResult{Token: "token", User: &usecases.UserDTO{ID: 1}}, nil
}

type mockGetUserUC struct {
	executeFunc func(ctx context.Context, query usecases.GetUserQuery) (*usecases.UserDTO, error)
}

func (m *mockGetUserUC) Execute(ctx context.Context, query usecases.GetUserQuery) (*usecases.UserDTO, error) {
	if m.executeFunc != nil {
		return m.executeFunc(ctx, query)
	}
	return &usecases.UserDTO{ID: 1}, nil
}

type handlerMocks struct {
	register *mockRegisterUC
	login    *mockLoginUC
	getUser  *mockGetUserUC
}

func setupTestRouter() (*gin.Engine, *handlerMocks) {
	mocks := &handlerMocks{
		register: &mockRegisterUC{},
		login:    &mockLoginUC{},
		getUser:  &mockGetUserUC{},
	}

	handler := NewAuthHandler(mocks.register, mocks.login, mocks.getUser, logger.NewLogger())

	router := gin.New()
	router.POST("/api/auth/register", handler.Register)
	router.POST("/api/auth/login", handler.Login)
	router.GET("/api/auth/verify", func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, uint(7))
		c.Next()
	}, handler.GetCurrentUser)

	return router, mocks
}

func TestRegister_Success(t *testing.T) {
	router, mocks := setupTestRouter()

	var captured usecases.RegisterCommand
	mocks.register.executeFunc = func(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.AuthResult, error) {
		captured = cmd
		return &usecases.AuthResult{
			Token: "signed-token",
			User:  &usecases.UserDTO{ID: 3, Email: cmd.Email, Name: cmd.Name, Role: "user"},
		}, nil
	}

	reqBody := RegisterRequest{
		Name:     "Alice Chen",
		Email:    "alice@example.com",
		Password: "supersecret",
	}
	bodyBytes, err := json.Marshal(reqBody)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "alice@example.com", captured.Email)
	assert.Equal(t, "Alice Chen", captured.Name)

	var response map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, true, response["success"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "signed-token", data["token"])
}

func TestRegister_ShortPassword(t *testing.T) {
	router, _ := setupTestRouter()

	bodyBytes, err := json.Marshal(RegisterRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "short",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	router, mocks := setupTestRouter()

	mocks.register.executeFunc = func(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.AuthResult, error) {
		return nil, errors.NewConflictError("email already registered")
	}

	bodyBytes, err := json.Marshal(RegisterRequest{
		Name:     "Alice Chen",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_Success(t *testing.T) {
	router, mocks := setupTestRouter()

	var captured usecases.LoginCommand
	mocks.login.executeFunc = func(ctx context.Context, cmd usecases.LoginCommand) (*usecases.AuthResult, error) {
		captured = cmd
		return &usecases.AuthResult{Token: "signed-token", User: &usecases.UserDTO{ID: 3}}, nil
	}

	bodyBytes, err := json.Marshal(LoginRequest{Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice@example.com", captured.Email)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router, mocks := setupTestRouter()

	mocks.login.executeFunc = func(ctx context.Context, cmd usecases.LoginCommand) (*usecases.AuthResult, error) {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	bodyBytes, err := json.Marshal(LoginRequest{Email: "alice@example.com", Password: "wrong"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	errObj := response["error"].(map[string]interface{})
	assert.Contains(t, errObj["message"], "invalid email or password")
}

func TestGetCurrentUser_UsesContextIdentity(t *testing.T) {
	router, mocks := setupTestRouter()

	var captured usecases.GetUserQuery
	mocks.getUser.executeFunc = func(ctx context.Context, query usecases.GetUserQuery) (*usecases.UserDTO, error) {
		captured = query
		return &usecases.UserDTO{ID: query.UserID, Email: "alice@example.com"}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), captured.UserID)
}
