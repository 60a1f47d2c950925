package ticket

import (
	"fmt"
	"strings"
	"sync"
	"time"

	vo "github.com/helpdeskhq/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdeskhq/helpdesk/internal/shared/authorization"
)

// ErrAlreadyAssigned is returned by Take when the ticket has an assignee.
var ErrAlreadyAssigned = fmt.Errorf("ticket is already assigned")

const (
	MinTitleLength       = 5
	MaxTitleLength       = 200
	MinDescriptionLength = 10
	MaxDescriptionLength = 5000
)

type Ticket struct {
	id              uint
	title           string
	description     string
	priority        vo.Priority
	status          vo.TicketStatus
	requesterID     uint
	assigneeID      *uint
	resolutionNotes string
	resolvedAt      *time.Time
	closedAt        *time.Time
	version         int
	createdAt       time.Time
	updatedAt       time.Time
	events          []interface{}
	mu              sync.RWMutex
}

// NewTicket creates a new ticket. Status always starts as open regardless
// of anything the caller supplies.
func NewTicket(
	title string,
	description string,
	priority vo.Priority,
	requesterID uint,
) (*Ticket, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if len(title) < MinTitleLength {
		return nil, fmt.Errorf("title must be at least %d characters", MinTitleLength)
	}
	if len(title) > MaxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	if len(description) < MinDescriptionLength {
		return nil, fmt.Errorf("description must be at least %d characters", MinDescriptionLength)
	}
	if len(description) > MaxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", MaxDescriptionLength)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if requesterID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}

	now := time.Now()
	t := &Ticket{
		title:       title,
		description: description,
		priority:    priority,
		status:      vo.StatusOpen,
		requesterID: requesterID,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
		events:      []interface{}{},
	}

	return t, nil
}

// ReconstructTicket reconstructs a ticket from persistence
func ReconstructTicket(
	id uint,
	title string,
	description string,
	priority vo.Priority,
	status vo.TicketStatus,
	requesterID uint,
	assigneeID *uint,
	resolutionNotes string,
	resolvedAt *time.Time,
	closedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if requesterID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}

	return &Ticket{
		id:              id,
		title:           title,
		description:     description,
		priority:        priority,
		status:          status,
		requesterID:     requesterID,
		assigneeID:      assigneeID,
		resolutionNotes: resolutionNotes,
		resolvedAt:      resolvedAt,
		closedAt:        closedAt,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		events:          []interface{}{},
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) RequesterID() uint {
	return t.requesterID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) ResolutionNotes() string {
	return t.resolutionNotes
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

func (t *Ticket) Version() int {
	return t.version
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// SetID assigns the persistent identity once, after the insert. The created
// event is recorded here rather than in NewTicket so it carries the real ID.
func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id

	t.recordEvent(NewTicketCreatedEvent(
		t.id,
		t.title,
		t.requesterID,
		t.priority.String(),
	))

	return nil
}

// UpdateTitle replaces the ticket title
func (t *Ticket) UpdateTitle(title string) error {
	title = strings.TrimSpace(title)
	if len(title) < MinTitleLength {
		return fmt.Errorf("title must be at least %d characters", MinTitleLength)
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}

	if t.title == title {
		return nil
	}

	t.title = title
	t.touch()
	return nil
}

// UpdateDescription replaces the ticket description
func (t *Ticket) UpdateDescription(description string) error {
	description = strings.TrimSpace(description)
	if len(description) < MinDescriptionLength {
		return fmt.Errorf("description must be at least %d characters", MinDescriptionLength)
	}
	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", MaxDescriptionLength)
	}

	if t.description == description {
		return nil
	}

	t.description = description
	t.touch()
	return nil
}

// ChangePriority changes the ticket priority
func (t *Ticket) ChangePriority(newPriority vo.Priority, changedBy uint) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}

	if t.priority == newPriority {
		return nil
	}

	oldPriority := t.priority
	t.priority = newPriority
	t.touch()

	t.recordEvent(NewTicketPriorityChangedEvent(
		t.id,
		oldPriority.String(),
		newPriority.String(),
		changedBy,
	))

	return nil
}

// ChangeStatus moves the ticket into a new status. Moving into resolved
// requires non-empty resolution notes; the notes are stored on the ticket.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus, changedBy uint, resolutionNotes string) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if newStatus.IsResolved() {
		resolutionNotes = strings.TrimSpace(resolutionNotes)
		if resolutionNotes == "" {
			return fmt.Errorf("resolution notes are required to resolve a ticket")
		}
		t.resolutionNotes = resolutionNotes
		now := time.Now()
		t.resolvedAt = &now
	}

	if newStatus.IsClosed() && t.closedAt == nil {
		now := time.Now()
		t.closedAt = &now
	}

	if !newStatus.IsTerminal() {
		t.resolvedAt = nil
		t.closedAt = nil
	}

	oldStatus := t.status
	t.status = newStatus
	t.touch()

	t.recordEvent(NewTicketStatusChangedEvent(
		t.id,
		oldStatus.String(),
		newStatus.String(),
		changedBy,
	))

	return nil
}

// SetResolutionNotes replaces the resolution notes without moving the
// status. Lets staff amend notes on an already resolved ticket.
func (t *Ticket) SetResolutionNotes(notes string) error {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return fmt.Errorf("resolution notes cannot be empty")
	}

	if t.resolutionNotes == notes {
		return nil
	}

	t.resolutionNotes = notes
	t.touch()
	return nil
}

// AssignTo assigns the ticket to an agent, replacing any existing assignee.
func (t *Ticket) AssignTo(assigneeID uint, assignedBy uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	if t.assigneeID != nil && *t.assigneeID == assigneeID {
		return nil
	}

	t.assigneeID = &assigneeID
	t.touch()

	if t.status.IsOpen() {
		t.status = vo.StatusInProgress
	}

	t.recordEvent(NewTicketAssignedEvent(t.id, assigneeID, assignedBy))

	return nil
}

// Take claims an unassigned ticket for the given agent. Returns
// ErrAlreadyAssigned when another agent already holds the ticket.
func (t *Ticket) Take(agentID uint) error {
	if agentID == 0 {
		return fmt.Errorf("agent ID cannot be zero")
	}

	if t.assigneeID != nil {
		return ErrAlreadyAssigned
	}

	t.assigneeID = &agentID
	t.touch()

	if t.status.IsOpen() {
		t.status = vo.StatusInProgress
	}

	t.recordEvent(NewTicketAssignedEvent(t.id, agentID, agentID))

	return nil
}

// Unassign removes the current assignee
func (t *Ticket) Unassign() {
	if t.assigneeID == nil {
		return
	}
	t.assigneeID = nil
	t.touch()
}

// CanBeViewedBy reports whether the given user may read this ticket.
// Staff see everything; requesters see their own tickets.
func (t *Ticket) CanBeViewedBy(userID uint, role authorization.UserRole) bool {
	if role.IsStaff() {
		return true
	}

	if t.requesterID == userID {
		return true
	}

	if t.assigneeID != nil && *t.assigneeID == userID {
		return true
	}

	return false
}

func (t *Ticket) touch() {
	t.updatedAt = time.Now()
	t.version++
}

// recordEvent records a domain event
func (t *Ticket) recordEvent(event interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, event)
}

// GetEvents returns and clears recorded domain events
func (t *Ticket) GetEvents() []interface{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	events := t.events
	t.events = []interface{}{}
	return events
}

// ClearEvents clears all recorded domain events
func (t *Ticket) ClearEvents() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = []interface{}{}
}

// Validate checks the aggregate's internal consistency
func (t *Ticket) Validate() error {
	if len(t.title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(t.description) == 0 {
		return fmt.Errorf("description is required")
	}
	if !t.priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	if !t.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if t.requesterID == 0 {
		return fmt.Errorf("requester ID is required")
	}
	return nil
}
