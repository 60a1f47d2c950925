package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdeskhq/helpdesk/internal/domain/ticket"
	"github.com/helpdeskhq/helpdesk/internal/shared/authorization"
	apperrors "github.com/helpdeskhq/helpdesk/internal/shared/errors"
)

func TestListTicketsUseCase_Execute_PlainUserScopedToOwnTickets(t *testing.T) {
	var capturedFilter ticket.TicketFilter
	mockRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			capturedFilter = filters
			return []*ticket.Ticket{storedTicket(t, 1, nil)}, 1, nil
		},
	}

	useCase := NewListTicketsUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListTicketsQuery{
		UserID:   1,
		UserRole: authorization.RoleUser,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	require.NotNil(t, capturedFilter.RequesterID)
	assert.Equal(t, uint(1), *capturedFilter.RequesterID)
}

func TestListTicketsUseCase_Execute_StaffSeesAllTickets(t *testing.T) {
	var capturedFilter ticket.TicketFilter
	mockRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			capturedFilter = filters
			return nil, 0, nil
		},
	}

	useCase := NewListTicketsUseCase(mockRepo, &mockLogger{})
	_, err := useCase.Execute(context.Background(), ListTicketsQuery{
		UserID:   9,
		UserRole: authorization.RoleAgent,
	})

	require.NoError(t, err)
	assert.Nil(t, capturedFilter.RequesterID)
}

func TestListTicketsUseCase_Execute_FiltersValidated(t *testing.T) {
	tests := []struct {
		name  string
		query ListTicketsQuery
	}{
		{
			name: "invalid status filter",
			query: ListTicketsQuery{
				UserID:   1,
				UserRole: authorization.RoleUser,
				Status:   "pending",
			},
		},
		{
			name: "invalid priority filter",
			query: ListTicketsQuery{
				UserID:   1,
				UserRole: authorization.RoleUser,
				Priority: "blocker",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewListTicketsUseCase(&mockTicketRepository{}, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.query)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}

func TestListTicketsUseCase_Execute_UnassignedFilterPassedThrough(t *testing.T) {
	var capturedFilter ticket.TicketFilter
	mockRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			capturedFilter = filters
			return nil, 0, nil
		},
	}

	unassigned := true
	useCase := NewListTicketsUseCase(mockRepo, &mockLogger{})
	_, err := useCase.Execute(context.Background(), ListTicketsQuery{
		UserID:     9,
		UserRole:   authorization.RoleAdmin,
		Unassigned: &unassigned,
	})

	require.NoError(t, err)
	require.NotNil(t, capturedFilter.Unassigned)
	assert.True(t, *capturedFilter.Unassigned)
}
