package usecases

import (
	"context"

	"github.com/helpdeskhq/helpdesk/internal/domain/shared/events"
	"github.com/helpdeskhq/helpdesk/internal/domain/ticket"
	vo "github.com/helpdeskhq/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdeskhq/helpdesk/internal/domain/user"
	"github.com/helpdeskhq/helpdesk/internal/shared/authorization"
	"github.com/helpdeskhq/helpdesk/internal/shared/errors"
	"github.com/helpdeskhq/helpdesk/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID uint
	UserID   uint
	UserRole authorization.UserRole

	Title       *string
	Description *string
	Priority    *string

	// Staff-only fields. Silently ignored for plain users except status,
	// which a submitter must never be able to change.
	Status          *string
	ResolutionNotes *string
	AssigneeID      *uint
	Unassign        bool
}

type UpdateTicketUseCase struct {
	ticketRepo      ticket.TicketRepository
	userRepo        user.Repository
	eventDispatcher events.EventPublisher
	logger          logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	eventDispatcher events.EventPublisher,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:      ticketRepo,
		userRepo:        userRepo,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*TicketDTO, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	ticketAggregate, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !ticketAggregate.CanBeViewedBy(cmd.UserID, cmd.UserRole) {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	isStaff := cmd.UserRole.IsStaff()
	if !isStaff && ticketAggregate.RequesterID() != cmd.UserID {
		return nil, errors.NewForbiddenError("only the submitter may update this ticket")
	}

	if cmd.Title != nil {
		if err := ticketAggregate.UpdateTitle(*cmd.Title); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Description != nil {
		if err := ticketAggregate.UpdateDescription(*cmd.Description); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Priority != nil {
		priority := vo.Priority(*cmd.Priority)
		if !priority.IsValid() {
			return nil, errors.NewValidationError("invalid priority")
		}
		if err := ticketAggregate.ChangePriority(priority, cmd.UserID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if isStaff {
		if err := uc.applyStaffChanges(ctx, ticketAggregate, cmd); err != nil {
			return nil, err
		}
	}

	if err := uc.ticketRepo.Update(ctx, ticketAggregate); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	publishEvents(uc.eventDispatcher, uc.logger, ticketAggregate.GetEvents())

	uc.logger.Infow("ticket updated successfully", "ticket_id", ticketAggregate.ID())

	return ticketToDTO(ticketAggregate), nil
}

func (uc *UpdateTicketUseCase) applyStaffChanges(
	ctx context.Context,
	ticketAggregate *ticket.Ticket,
	cmd UpdateTicketCommand,
) error {
	if cmd.AssigneeID != nil {
		assignee, err := uc.userRepo.GetByID(ctx, *cmd.AssigneeID)
		if err != nil {
			uc.logger.Errorw("failed to find assignee", "error", err, "assignee_id", *cmd.AssigneeID)
			return errors.NewInternalError("failed to look up assignee")
		}
		if assignee == nil {
			return errors.NewNotFoundError("assignee not found")
		}
		if !assignee.Role().IsStaff() {
			return errors.NewValidationError("assignee must be an agent or admin")
		}
		if err := ticketAggregate.AssignTo(*cmd.AssigneeID, cmd.UserID); err != nil {
			return errors.NewValidationError(err.Error())
		}
	} else if cmd.Unassign {
		ticketAggregate.Unassign()
	}

	if cmd.Status != nil {
		status := vo.TicketStatus(*cmd.Status)
		if !status.IsValid() {
			return errors.NewValidationError("invalid status")
		}

		notes := ""
		if cmd.ResolutionNotes != nil {
			notes = *cmd.ResolutionNotes
		}

		if err := ticketAggregate.ChangeStatus(status, cmd.UserID, notes); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	// Notes can be amended on their own, including when the status in the
	// payload matches the current one and ChangeStatus does nothing.
	if cmd.ResolutionNotes != nil {
		if err := ticketAggregate.SetResolutionNotes(*cmd.ResolutionNotes); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	return nil
}
