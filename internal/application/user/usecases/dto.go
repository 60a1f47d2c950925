package usecases

import (
	"time"

	"github.com/helpdeskhq/helpdesk/internal/domain/user"
)

// UserDTO is the application-layer representation of a user. The password
// hash never leaves the application boundary.
type UserDTO struct {
	ID                     uint      `json:"id"`
	Email                  string    `json:"email"`
	Name                   string    `json:"name"`
	Role                   string    `json:"role"`
	NotificationPreference string    `json:"notification_preference"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// AuthResult carries a signed token together with the authenticated user.
type AuthResult struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}

func userToDTO(u *user.User) *UserDTO {
	return &UserDTO{
		ID:                     u.ID(),
		Email:                  u.Email().String(),
		Name:                   u.Name().String(),
		Role:                   u.Role().String(),
		NotificationPreference: u.NotificationPreference().String(),
		CreatedAt:              u.CreatedAt(),
		UpdatedAt:              u.UpdatedAt(),
	}
}
