package notification

import (
	"context"

	"github.com/helpdeskhq/helpdesk/internal/domain/shared/events"
	"github.com/helpdeskhq/helpdesk/internal/domain/ticket"
	vo "github.com/helpdeskhq/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdeskhq/helpdesk/internal/domain/user"
	uservo "github.com/helpdeskhq/helpdesk/internal/domain/user/valueobjects"
	"github.com/helpdeskhq/helpdesk/internal/shared/goroutine"
	"github.com/helpdeskhq/helpdesk/internal/shared/logger"
)

// EmailSender delivers rendered ticket emails.
type EmailSender interface {
	SendTicketCreatedEmail(to string, ticketID uint, title, priority string) error
	SendTicketAssignedEmail(to string, ticketID uint, title, assigneeName string) error
	SendTicketStatusChangedEmail(to string, ticketID uint, title, oldStatus, newStatus string) error
}

// TicketNotifier turns ticket domain events into submitter emails. Sends are
// fire-and-forget: delivery failures are logged and never surface to the
// request that produced the event.
type TicketNotifier struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	sender     EmailSender
	logger     logger.Interface
}

func NewTicketNotifier(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	sender EmailSender,
	logger logger.Interface,
) *TicketNotifier {
	return &TicketNotifier{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		sender:     sender,
		logger:     logger,
	}
}

// Register subscribes the notifier to the event types it handles.
func (n *TicketNotifier) Register(subscriber events.EventSubscriber) error {
	handlers := map[string]func(events.DomainEvent) error{
		ticket.EventTypeTicketCreated:       n.handleCreated,
		ticket.EventTypeTicketAssigned:      n.handleAssigned,
		ticket.EventTypeTicketStatusChanged: n.handleStatusChanged,
	}

	for eventType, handler := range handlers {
		if err := subscriber.Subscribe(eventType, events.NewSimpleEventHandler(eventType, handler)); err != nil {
			return err
		}
	}

	return nil
}

func (n *TicketNotifier) handleCreated(event events.DomainEvent) error {
	created, ok := event.(ticket.TicketCreatedEvent)
	if !ok {
		return nil
	}

	goroutine.SafeGo(n.logger, "notify-ticket-created", func() {
		n.notifyCreated(created)
	})

	return nil
}

func (n *TicketNotifier) handleAssigned(event events.DomainEvent) error {
	assigned, ok := event.(ticket.TicketAssignedEvent)
	if !ok {
		return nil
	}

	goroutine.SafeGo(n.logger, "notify-ticket-assigned", func() {
		n.notifyAssigned(assigned)
	})

	return nil
}

func (n *TicketNotifier) handleStatusChanged(event events.DomainEvent) error {
	changed, ok := event.(ticket.TicketStatusChangedEvent)
	if !ok {
		return nil
	}

	goroutine.SafeGo(n.logger, "notify-ticket-status-changed", func() {
		n.notifyStatusChanged(changed)
	})

	return nil
}

func (n *TicketNotifier) notifyCreated(event ticket.TicketCreatedEvent) {
	ctx := context.Background()

	t, err := n.ticketRepo.GetByID(ctx, event.TicketID)
	if err != nil {
		n.logger.Warnw("skipping creation notification, ticket lookup failed",
			"error", err, "ticket_id", event.TicketID)
		return
	}

	submitter := n.recipientFor(ctx, t)
	if submitter == nil {
		return
	}

	if err := n.sender.SendTicketCreatedEmail(
		submitter.Email().String(), t.ID(), t.Title(), t.Priority().String(),
	); err != nil {
		n.logger.Warnw("failed to send creation email",
			"error", err, "ticket_id", t.ID(), "user_id", submitter.ID())
	}
}

func (n *TicketNotifier) notifyAssigned(event ticket.TicketAssignedEvent) {
	ctx := context.Background()

	t, err := n.ticketRepo.GetByID(ctx, event.TicketID)
	if err != nil {
		n.logger.Warnw("skipping assignment notification, ticket lookup failed",
			"error", err, "ticket_id", event.TicketID)
		return
	}

	submitter := n.recipientFor(ctx, t)
	if submitter == nil {
		return
	}

	assigneeName := "an agent"
	if assignee, err := n.userRepo.GetByID(ctx, event.AssigneeID); err == nil && assignee != nil {
		assigneeName = assignee.Name().String()
	}

	if err := n.sender.SendTicketAssignedEmail(
		submitter.Email().String(), t.ID(), t.Title(), assigneeName,
	); err != nil {
		n.logger.Warnw("failed to send assignment email",
			"error", err, "ticket_id", t.ID(), "user_id", submitter.ID())
	}
}

func (n *TicketNotifier) notifyStatusChanged(event ticket.TicketStatusChangedEvent) {
	ctx := context.Background()

	t, err := n.ticketRepo.GetByID(ctx, event.TicketID)
	if err != nil {
		n.logger.Warnw("skipping status notification, ticket lookup failed",
			"error", err, "ticket_id", event.TicketID)
		return
	}

	submitter := n.recipientFor(ctx, t)
	if submitter == nil {
		return
	}

	if err := n.sender.SendTicketStatusChangedEmail(
		submitter.Email().String(), t.ID(), t.Title(), event.OldStatus, event.NewStatus,
	); err != nil {
		n.logger.Warnw("failed to send status change email",
			"error", err, "ticket_id", t.ID(), "user_id", submitter.ID())
	}
}

// recipientFor loads the submitter and applies their notification
// preference. Returns nil when no email should go out.
func (n *TicketNotifier) recipientFor(ctx context.Context, t *ticket.Ticket) *user.User {
	submitter, err := n.userRepo.GetByID(ctx, t.RequesterID())
	if err != nil || submitter == nil {
		n.logger.Warnw("skipping notification, submitter lookup failed",
			"error", err, "ticket_id", t.ID(), "requester_id", t.RequesterID())
		return nil
	}

	if !shouldNotify(submitter.NotificationPreference(), t.Priority()) {
		return nil
	}

	return submitter
}

func shouldNotify(pref uservo.NotificationPreference, priority vo.Priority) bool {
	switch pref {
	case uservo.NotifyNone:
		return false
	case uservo.NotifyImportant:
		return priority.IsImportant()
	default:
		return true
	}
}
