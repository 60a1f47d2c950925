package ticket

import (
	"github.com/helpdeskhq/helpdesk/internal/domain/shared/events"
)

// Event types
const (
	EventTypeTicketCreated         = "ticket.created"
	EventTypeTicketAssigned        = "ticket.assigned"
	EventTypeTicketStatusChanged   = "ticket.status.changed"
	EventTypeTicketPriorityChanged = "ticket.priority.changed"
)

const aggregateKind = "ticket"

// TicketCreatedEvent is emitted when a requester opens a new ticket
type TicketCreatedEvent struct {
	events.BaseEvent
	TicketID    uint   `json:"ticket_id"`
	Title       string `json:"title"`
	RequesterID uint   `json:"requester_id"`
	Priority    string `json:"priority"`
}

// NewTicketCreatedEvent creates a new ticket created event
func NewTicketCreatedEvent(ticketID uint, title string, requesterID uint, priority string) TicketCreatedEvent {
	return TicketCreatedEvent{
		BaseEvent:   events.NewBaseEvent(aggregateKind, ticketID, EventTypeTicketCreated),
		TicketID:    ticketID,
		Title:       title,
		RequesterID: requesterID,
		Priority:    priority,
	}
}

// TicketAssignedEvent is emitted when a ticket gains an assignee
type TicketAssignedEvent struct {
	events.BaseEvent
	TicketID   uint `json:"ticket_id"`
	AssigneeID uint `json:"assignee_id"`
	AssignedBy uint `json:"assigned_by"`
}

// NewTicketAssignedEvent creates a new ticket assigned event
func NewTicketAssignedEvent(ticketID, assigneeID, assignedBy uint) TicketAssignedEvent {
	return TicketAssignedEvent{
		BaseEvent:  events.NewBaseEvent(aggregateKind, ticketID, EventTypeTicketAssigned),
		TicketID:   ticketID,
		AssigneeID: assigneeID,
		AssignedBy: assignedBy,
	}
}

// TicketStatusChangedEvent is emitted on every status transition
type TicketStatusChangedEvent struct {
	events.BaseEvent
	TicketID  uint   `json:"ticket_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
	ChangedBy uint   `json:"changed_by"`
}

// NewTicketStatusChangedEvent creates a new ticket status changed event
func NewTicketStatusChangedEvent(ticketID uint, oldStatus, newStatus string, changedBy uint) TicketStatusChangedEvent {
	return TicketStatusChangedEvent{
		BaseEvent: events.NewBaseEvent(aggregateKind, ticketID, EventTypeTicketStatusChanged),
		TicketID:  ticketID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		ChangedBy: changedBy,
	}
}

// TicketPriorityChangedEvent is emitted when a ticket's priority changes
type TicketPriorityChangedEvent struct {
	events.BaseEvent
	TicketID    uint   `json:"ticket_id"`
	OldPriority string `json:"old_priority"`
	NewPriority string `json:"new_priority"`
	ChangedBy   uint   `json:"changed_by"`
}

// NewTicketPriorityChangedEvent creates a new ticket priority changed event
func NewTicketPriorityChangedEvent(ticketID uint, oldPriority, newPriority string, changedBy uint) TicketPriorityChangedEvent {
	return TicketPriorityChangedEvent{
		BaseEvent:   events.NewBaseEvent(aggregateKind, ticketID, EventTypeTicketPriorityChanged),
		TicketID:    ticketID,
		OldPriority: oldPriority,
		NewPriority: newPriority,
		ChangedBy:   changedBy,
	}
}
