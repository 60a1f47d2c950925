package usecases

import (
	"context"

	"github.com/helpdeskhq/helpdesk/internal/domain/ticket"
	"github.com/helpdeskhq/helpdesk/internal/shared/authorization"
	"github.com/helpdeskhq/helpdesk/internal/shared/errors"
	"github.com/helpdeskhq/helpdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	UserID   uint
	UserRole authorization.UserRole
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	ticketAggregate, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "error", err, "ticket_id", query.TicketID)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	// Tickets outside the caller's scope read as absent, not forbidden.
	if !ticketAggregate.CanBeViewedBy(query.UserID, query.UserRole) {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	return ticketToDTO(ticketAggregate), nil
}
