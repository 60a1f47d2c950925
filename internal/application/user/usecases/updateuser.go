package usecases

import (
	"context"

	"github.com/helpdeskhq/helpdesk/internal/domain/user"
	vo "github.com/helpdeskhq/helpdesk/internal/domain/user/valueobjects"
	"github.com/helpdeskhq/helpdesk/internal/shared/authorization"
	"github.com/helpdeskhq/helpdesk/internal/shared/errors"
	"github.com/helpdeskhq/helpdesk/internal/shared/logger"
)

type UpdateUserCommand struct {
	UserID uint

	Name                   *string
	Role                   *string
	NotificationPreference *string
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.Repository, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*UserDTO, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	existingUser, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, errors.NewInternalError("failed to look up user")
	}
	if existingUser == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if cmd.Name != nil {
		name, err := vo.NewName(*cmd.Name)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := existingUser.UpdateName(name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Role != nil {
		role := authorization.UserRole(*cmd.Role)
		if !role.IsValid() {
			return nil, errors.NewValidationError("invalid role")
		}
		if err := existingUser.ChangeRole(role); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.NotificationPreference != nil {
		pref := vo.NotificationPreference(*cmd.NotificationPreference)
		if err := existingUser.ChangeNotificationPreference(pref); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", cmd.UserID)
		return nil, errors.NewInternalError("failed to update user")
	}

	uc.logger.Infow("user updated successfully", "user_id", existingUser.ID())

	return userToDTO(existingUser), nil
}
