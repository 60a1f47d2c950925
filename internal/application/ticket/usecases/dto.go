package usecases

import (
	"time"

	"github.com/helpdeskhq/helpdesk/internal/domain/ticket"
)

// TicketDTO is the application-layer representation of a ticket
type TicketDTO struct {
	ID              uint       `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Priority        string     `json:"priority"`
	Status          string     `json:"status"`
	RequesterID     uint       `json:"requester_id"`
	AssigneeID      *uint      `json:"assignee_id,omitempty"`
	ResolutionNotes string     `json:"resolution_notes,omitempty"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
	ClosedAt        *time.Time `json:"closed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func ticketToDTO(t *ticket.Ticket) *TicketDTO {
	return &TicketDTO{
		ID:              t.ID(),
		Title:           t.Title(),
		Description:     t.Description(),
		Priority:        t.Priority().String(),
		Status:          t.Status().String(),
		RequesterID:     t.RequesterID(),
		AssigneeID:      t.AssigneeID(),
		ResolutionNotes: t.ResolutionNotes(),
		ResolvedAt:      t.ResolvedAt(),
		ClosedAt:        t.ClosedAt(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}
}
