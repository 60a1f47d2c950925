package ticket

import (
	"context"

	vo "github.com/helpdeskhq/helpdesk/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)

	// GetByIDForUpdate reads the ticket with a row lock when called inside
	// a transaction, so concurrent claims serialize on the row.
	GetByIDForUpdate(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filters TicketFilter) ([]*Ticket, int64, error)
	GetRequesterTickets(ctx context.Context, requesterID uint, filters TicketFilter) ([]*Ticket, int64, error)
	GetAssignedTickets(ctx context.Context, assigneeID uint, filters TicketFilter) ([]*Ticket, int64, error)
}

type TicketFilter struct {
	Status      *vo.TicketStatus
	Priority    *vo.Priority
	RequesterID *uint
	AssigneeID  *uint
	Unassigned  *bool
	Page        int
	PageSize    int
	SortBy      string
	SortOrder   string
}
