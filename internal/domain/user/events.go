package user

import (
	"time"

	"github.com/helpdeskhq/helpdesk/internal/domain/shared/events"
)

// Event types
const (
	EventTypeUserRegistered  = "user.registered"
	EventTypeUserRoleChanged = "user.role.changed"
	EventTypeUserDeleted     = "user.deleted"
)

const aggregateKind = "user"

// UserRegisteredEvent is emitted when a new user account is created
type UserRegisteredEvent struct {
	events.BaseEvent
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// NewUserRegisteredEvent creates a new user registered event
func NewUserRegisteredEvent(userID uint, email, name, role string) UserRegisteredEvent {
	return UserRegisteredEvent{
		BaseEvent: events.NewBaseEvent(aggregateKind, userID, EventTypeUserRegistered),
		UserID:    userID,
		Email:     email,
		Name:      name,
		Role:      role,
	}
}

// UserRoleChangedEvent is emitted when an admin changes a user's role
type UserRoleChangedEvent struct {
	events.BaseEvent
	UserID  uint   `json:"user_id"`
	OldRole string `json:"old_role"`
	NewRole string `json:"new_role"`
}

// NewUserRoleChangedEvent creates a new user role changed event
func NewUserRoleChangedEvent(userID uint, oldRole, newRole string) UserRoleChangedEvent {
	return UserRoleChangedEvent{
		BaseEvent: events.NewBaseEvent(aggregateKind, userID, EventTypeUserRoleChanged),
		UserID:    userID,
		OldRole:   oldRole,
		NewRole:   newRole,
	}
}

// UserDeletedEvent is emitted when a user account is removed
type UserDeletedEvent struct {
	events.BaseEvent
	UserID    uint      `json:"user_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

// NewUserDeletedEvent creates a new user deleted event
func NewUserDeletedEvent(userID uint) UserDeletedEvent {
	return UserDeletedEvent{
		BaseEvent: events.NewBaseEvent(aggregateKind, userID, EventTypeUserDeleted),
		UserID:    userID,
		DeletedAt: time.Now(),
	}
}
