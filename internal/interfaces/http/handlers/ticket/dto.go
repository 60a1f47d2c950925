package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/helpdeskhq/helpdesk/internal/application/ticket/usecases"
	"github.com/helpdeskhq/helpdesk/internal/shared/authorization"
	"github.com/helpdeskhq/helpdesk/internal/shared/errors"
	"github.com/helpdeskhq/helpdesk/internal/shared/utils"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
	Priority    string `json:"priority,omitempty"`
}

func (r *CreateTicketRequest) ToCommand(requesterID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		RequesterID: requesterID,
	}
}

type UpdateTicketRequest struct {
	Title           *string `json:"title,omitempty" binding:"omitempty,max=200"`
	Description     *string `json:"description,omitempty" binding:"omitempty,max=5000"`
	Priority        *string `json:"priority,omitempty"`
	Status          *string `json:"status,omitempty"`
	ResolutionNotes *string `json:"resolution_notes,omitempty" binding:"omitempty,max=2000"`
	AssigneeID      *uint   `json:"assignee_id,omitempty"`
	Unassign        bool    `json:"unassign,omitempty"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID, userID uint, role authorization.UserRole) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:        ticketID,
		UserID:          userID,
		UserRole:        role,
		Title:           r.Title,
		Description:     r.Description,
		Priority:        r.Priority,
		Status:          r.Status,
		ResolutionNotes: r.ResolutionNotes,
		AssigneeID:      r.AssigneeID,
		Unassign:        r.Unassign,
	}
}

type ListTicketsRequest struct {
	Page       int
	PageSize   int
	Status     string
	Priority   string
	AssigneeID *uint
	Unassigned *bool
	SortBy     string
	SortOrder  string
}

func (r *ListTicketsRequest) ToQuery(userID uint, role authorization.UserRole) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		UserID:     userID,
		UserRole:   role,
		Status:     r.Status,
		Priority:   r.Priority,
		AssigneeID: r.AssigneeID,
		Unassigned: r.Unassigned,
		Page:       r.Page,
		PageSize:   r.PageSize,
		SortBy:     r.SortBy,
		SortOrder:  r.SortOrder,
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	pagination := utils.ParsePagination(c)

	req := &ListTicketsRequest{
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if assigneeIDStr := c.Query("assignee_id"); assigneeIDStr != "" {
		assigneeID, err := strconv.ParseUint(assigneeIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid assignee_id")
		}
		id := uint(assigneeID)
		req.AssigneeID = &id
	}

	if unassignedStr := c.Query("unassigned"); unassignedStr != "" {
		unassigned, err := strconv.ParseBool(unassignedStr)
		if err != nil {
			return nil, errors.NewValidationError("invalid unassigned flag")
		}
		req.Unassigned = &unassigned
	}

	return req, nil
}
