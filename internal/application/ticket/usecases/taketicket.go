package usecases

import (
	"context"
	"fmt"

	"github.com/helpdeskhq/helpdesk/internal/domain/shared/events"
	"github.com/helpdeskhq/helpdesk/internal/domain/ticket"
	"github.com/helpdeskhq/helpdesk/internal/domain/user"
	"github.com/helpdeskhq/helpdesk/internal/shared/db"
	"github.com/helpdeskhq/helpdesk/internal/shared/errors"
	"github.com/helpdeskhq/helpdesk/internal/shared/logger"
)

type TakeTicketCommand struct {
	TicketID uint
	AgentID  uint
}

type TakeTicketUseCase struct {
	ticketRepo      ticket.TicketRepository
	userRepo        user.Repository
	txMgr           *db.TransactionManager
	eventDispatcher events.EventPublisher
	logger          logger.Interface
}

func NewTakeTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	txMgr *db.TransactionManager,
	eventDispatcher events.EventPublisher,
	logger logger.Interface,
) *TakeTicketUseCase {
	return &TakeTicketUseCase{
		ticketRepo:      ticketRepo,
		userRepo:        userRepo,
		txMgr:           txMgr,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *TakeTicketUseCase) Execute(ctx context.Context, cmd TakeTicketCommand) (*TicketDTO, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.AgentID == 0 {
		return nil, errors.NewValidationError("agent ID is required")
	}

	// Claim under a row lock: the FOR UPDATE read blocks a second agent's
	// transaction until the first commits, so only one claim can land.
	var ticketAggregate *ticket.Ticket
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			uc.logger.Errorw("failed to find ticket", "error", err, "ticket_id", cmd.TicketID)
			return errors.NewNotFoundError("ticket not found")
		}

		if err := t.Take(cmd.AgentID); err != nil {
			if err == ticket.ErrAlreadyAssigned {
				return uc.conflictWithAssignee(txCtx, t)
			}
			return errors.NewValidationError(err.Error())
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
			return errors.NewInternalError("failed to update ticket")
		}

		ticketAggregate = t
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	publishEvents(uc.eventDispatcher, uc.logger, ticketAggregate.GetEvents())

	uc.logger.Infow("ticket claimed successfully",
		"ticket_id", ticketAggregate.ID(),
		"agent_id", cmd.AgentID)

	return ticketToDTO(ticketAggregate), nil
}

// conflictWithAssignee builds the conflict error naming the agent currently
// holding the ticket.
func (uc *TakeTicketUseCase) conflictWithAssignee(ctx context.Context, t *ticket.Ticket) error {
	assigneeID := t.AssigneeID()
	if assigneeID == nil {
		return errors.NewConflictError("ticket is already assigned")
	}

	assignee, err := uc.userRepo.GetByID(ctx, *assigneeID)
	if err != nil || assignee == nil {
		return errors.NewConflictError(fmt.Sprintf("ticket is already assigned to user %d", *assigneeID))
	}

	return errors.NewConflictError(fmt.Sprintf("ticket is already assigned to %s", assignee.Name().String()))
}
