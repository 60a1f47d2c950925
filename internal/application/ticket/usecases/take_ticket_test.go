package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/helpdeskhq/helpdesk/internal/domain/ticket"
	vo "github.com/helpdeskhq/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdeskhq/helpdesk/internal/domain/user"
	uservo "github.com/helpdeskhq/helpdesk/internal/domain/user/valueobjects"
	"github.com/helpdeskhq/helpdesk/internal/shared/authorization"
	shareddb "github.com/helpdeskhq/helpdesk/internal/shared/db"
	apperrors "github.com/helpdeskhq/helpdesk/internal/shared/errors"
)

func testTxManager(t *testing.T) *shareddb.TransactionManager {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return shareddb.NewTransactionManager(gdb)
}

func storedTicket(t *testing.T, id uint, assigneeID *uint) *ticket.Ticket {
	t.Helper()
	now := time.Now()
	status := vo.StatusOpen
	if assigneeID != nil {
		status = vo.StatusInProgress
	}
	tkt, err := ticket.ReconstructTicket(
		id,
		"VPN keeps disconnecting",
		"The VPN connection drops every few minutes",
		vo.PriorityHigh,
		status,
		1,
		assigneeID,
		"",
		nil,
		nil,
		1,
		now,
		now,
	)
	require.NoError(t, err)
	return tkt
}

func storedUser(t *testing.T, id uint, name string, role authorization.UserRole) *user.User {
	t.Helper()
	email, err := uservo.NewEmail("agent@example.com")
	require.NoError(t, err)
	userName, err := uservo.NewName(name)
	require.NoError(t, err)
	now := time.Now()
	u, err := user.ReconstructUser(id, email, userName, "hash", role, uservo.NotifyAll, now, now, 1)
	require.NoError(t, err)
	return u
}

func TestTakeTicketUseCase_Execute_ClaimsUnassignedTicket(t *testing.T) {
	var updatedTicket *ticket.Ticket
	mockRepo := &mockTicketRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return storedTicket(t, ticketID, nil), nil
		},
		UpdateFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			updatedTicket = tkt
			return nil
		},
	}

	useCase := NewTakeTicketUseCase(mockRepo, &mockUserRepository{}, testTxManager(t), &mockEventPublisher{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), TakeTicketCommand{TicketID: 42, AgentID: 9})

	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, result.AssigneeID)
	assert.Equal(t, uint(9), *result.AssigneeID)
	assert.Equal(t, vo.StatusInProgress.String(), result.Status)

	require.NotNil(t, updatedTicket)
	require.NotNil(t, updatedTicket.AssigneeID())
	assert.Equal(t, uint(9), *updatedTicket.AssigneeID())
}

func TestTakeTicketUseCase_Execute_ConflictNamesCurrentAssignee(t *testing.T) {
	existingAssignee := uint(5)
	mockRepo := &mockTicketRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return storedTicket(t, ticketID, &existingAssignee), nil
		},
		UpdateFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			t.Fatal("update should not be called on conflict")
			return nil
		},
	}
	mockUsers := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return storedUser(t, id, "Dana Reyes", authorization.RoleAgent), nil
		},
	}

	useCase := NewTakeTicketUseCase(mockRepo, mockUsers, testTxManager(t), &mockEventPublisher{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), TakeTicketCommand{TicketID: 42, AgentID: 9})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsConflictError(err))
	assert.Contains(t, err.Error(), "Dana Reyes")
}

func TestTakeTicketUseCase_Execute_TicketNotFound(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		},
	}

	useCase := NewTakeTicketUseCase(mockRepo, &mockUserRepository{}, testTxManager(t), &mockEventPublisher{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), TakeTicketCommand{TicketID: 404, AgentID: 9})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}
