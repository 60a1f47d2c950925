package user

import (
	"fmt"
	"sync"
	"time"

	vo "github.com/helpdeskhq/helpdesk/internal/domain/user/valueobjects"
	"github.com/helpdeskhq/helpdesk/internal/shared/authorization"
)

// User represents the user aggregate root (pure domain model without persistence concerns)
type User struct {
	id               uint
	email            *vo.Email
	name             *vo.Name
	passwordHash     string
	role             authorization.UserRole
	notificationPref vo.NotificationPreference
	createdAt        time.Time
	updatedAt        time.Time
	version          int
	events           []interface{}
	mu               sync.RWMutex
}

// NewUser creates a new user aggregate with initial values
func NewUser(email *vo.Email, name *vo.Name, passwordHash string, role authorization.UserRole) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name == nil {
		return nil, fmt.Errorf("name is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now()
	user := &User{
		email:            email,
		name:             name,
		passwordHash:     passwordHash,
		role:             role,
		notificationPref: vo.NotifyAll,
		createdAt:        now,
		updatedAt:        now,
		version:          1,
		events:           []interface{}{},
	}

	user.recordEvent(NewUserRegisteredEvent(
		user.id,
		email.String(),
		name.String(),
		role.String(),
	))

	return user, nil
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(
	id uint,
	email *vo.Email,
	name *vo.Name,
	passwordHash string,
	role authorization.UserRole,
	notificationPref vo.NotificationPreference,
	createdAt, updatedAt time.Time,
	version int,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name == nil {
		return nil, fmt.Errorf("name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if !notificationPref.IsValid() {
		notificationPref = vo.NotifyAll
	}

	return &User{
		id:               id,
		email:            email,
		name:             name,
		passwordHash:     passwordHash,
		role:             role,
		notificationPref: notificationPref,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		version:          version,
		events:           []interface{}{},
	}, nil
}

// ID returns the user ID
func (u *User) ID() uint {
	return u.id
}

// Email returns the user's email
func (u *User) Email() *vo.Email {
	return u.email
}

// Name returns the user's name
func (u *User) Name() *vo.Name {
	return u.name
}

// PasswordHash returns the stored bcrypt hash
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's role
func (u *User) Role() authorization.UserRole {
	return u.role
}

// NotificationPreference returns the user's email notification preference
func (u *User) NotificationPreference() vo.NotificationPreference {
	return u.notificationPref
}

// CreatedAt returns when the user was created
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns when the user was last updated
func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// Version returns the aggregate version for optimistic locking
func (u *User) Version() int {
	return u.version
}

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// UpdateEmail updates the user's email address
func (u *User) UpdateEmail(newEmail *vo.Email) error {
	if newEmail == nil {
		return fmt.Errorf("email cannot be nil")
	}

	if u.email.Equals(newEmail) {
		return nil // No change needed
	}

	u.email = newEmail
	u.updatedAt = time.Now()
	u.version++

	return nil
}

// UpdateName updates the user's display name
func (u *User) UpdateName(newName *vo.Name) error {
	if newName == nil {
		return fmt.Errorf("name cannot be nil")
	}

	if u.name.Equals(newName) {
		return nil
	}

	u.name = newName
	u.updatedAt = time.Now()
	u.version++

	return nil
}

// ChangeRole changes the user's role
func (u *User) ChangeRole(newRole authorization.UserRole) error {
	if !newRole.IsValid() {
		return fmt.Errorf("invalid role: %s", newRole)
	}

	if u.role == newRole {
		return nil
	}

	oldRole := u.role
	u.role = newRole
	u.updatedAt = time.Now()
	u.version++

	u.recordEvent(NewUserRoleChangedEvent(u.id, oldRole.String(), newRole.String()))

	return nil
}

// ChangeNotificationPreference changes the user's email notification preference
func (u *User) ChangeNotificationPreference(pref vo.NotificationPreference) error {
	if !pref.IsValid() {
		return fmt.Errorf("invalid notification preference: %s", pref)
	}

	if u.notificationPref == pref {
		return nil
	}

	u.notificationPref = pref
	u.updatedAt = time.Now()
	u.version++

	return nil
}

// ChangePassword replaces the stored password hash
func (u *User) ChangePassword(newHash string) error {
	if newHash == "" {
		return fmt.Errorf("password hash cannot be empty")
	}

	u.passwordHash = newHash
	u.updatedAt = time.Now()
	u.version++

	return nil
}

// recordEvent records a domain event
func (u *User) recordEvent(event interface{}) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.events = append(u.events, event)
}

// GetEvents returns and clears recorded domain events
func (u *User) GetEvents() []interface{} {
	u.mu.Lock()
	defer u.mu.Unlock()
	events := u.events
	u.events = []interface{}{}
	return events
}

// ClearEvents clears all recorded domain events
func (u *User) ClearEvents() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.events = []interface{}{}
}

// Validate checks the aggregate's internal consistency
func (u *User) Validate() error {
	if u.email == nil {
		return fmt.Errorf("email is required")
	}
	if u.name == nil {
		return fmt.Errorf("name is required")
	}
	if u.passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	if !u.role.IsValid() {
		return fmt.Errorf("invalid role: %s", u.role)
	}
	return nil
}
