package mappers

import (
	"fmt"

	"github.com/helpdeskhq/helpdesk/internal/domain/user"
	vo "github.com/helpdeskhq/helpdesk/internal/domain/user/valueobjects"
	"github.com/helpdeskhq/helpdesk/internal/infrastructure/persistence/models"
	"github.com/helpdeskhq/helpdesk/internal/shared/authorization"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	// ToModel converts a user domain entity to a persistence model.
	ToModel(u *user.User) *models.UserModel

	// ToDomain converts a user persistence model to a domain entity.
	ToDomain(model *models.UserModel) (*user.User, error)
}

// UserMapperImpl is the concrete implementation of UserMapper.
type UserMapperImpl struct{}

// NewUserMapper creates a new UserMapper.
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

// ToModel converts a user domain entity to a persistence model.
func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:                     u.ID(),
		Email:                  u.Email().String(),
		Name:                   u.Name().String(),
		PasswordHash:           u.PasswordHash(),
		Role:                   u.Role().String(),
		NotificationPreference: u.NotificationPreference().String(),
		Version:                u.Version(),
		CreatedAt:              u.CreatedAt(),
		UpdatedAt:              u.UpdatedAt(),
	}
}

// ToDomain converts a user persistence model to a domain entity.
func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid email in user record (id=%d): %w", model.ID, err)
	}

	name, err := vo.NewName(model.Name)
	if err != nil {
		return nil, fmt.Errorf("invalid name in user record (id=%d): %w", model.ID, err)
	}

	role := authorization.ParseUserRole(model.Role)
	pref := vo.NotificationPreference(model.NotificationPreference)

	return user.ReconstructUser(
		model.ID,
		email,
		name,
		model.PasswordHash,
		role,
		pref,
		model.CreatedAt,
		model.UpdatedAt,
		model.Version,
	)
}
