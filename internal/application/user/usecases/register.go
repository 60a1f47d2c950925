package usecases

import (
	"context"

	"github.com/helpdeskhq/helpdesk/internal/domain/user"
	vo "github.com/helpdeskhq/helpdesk/internal/domain/user/valueobjects"
	"github.com/helpdeskhq/helpdesk/internal/shared/authorization"
	"github.com/helpdeskhq/helpdesk/internal/shared/errors"
	"github.com/helpdeskhq/helpdesk/internal/shared/logger"
	"github.com/helpdeskhq/helpdesk/internal/shared/utils"
)

const minPasswordLength = 8

type RegisterCommand struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type RegisterUseCase struct {
	userRepo     user.Repository
	hasher       PasswordHasher
	tokenService TokenService
	logger       logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokenService TokenService,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*AuthResult, error) {
	uc.logger.Infow("executing register use case", "email", utils.MaskEmail(cmd.Email))

	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	name, err := vo.NewName(cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	role := authorization.RoleUser
	if cmd.Role != "" {
		role = authorization.UserRole(cmd.Role)
		if !role.IsValid() {
			return nil, errors.NewValidationError("invalid role")
		}
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, errors.NewInternalError("failed to check email availability")
	}
	if exists {
		return nil, errors.NewConflictError("email is already registered")
	}

	passwordHash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	newUser, err := user.NewUser(email, name, passwordHash, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email is already registered")
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	token, err := uc.tokenService.Generate(newUser.ID(), email.String(), role)
	if err != nil {
		uc.logger.Errorw("failed to generate token", "error", err, "user_id", newUser.ID())
		return nil, errors.NewInternalError("failed to generate token")
	}

	uc.logger.Infow("user registered successfully", "user_id", newUser.ID(), "role", role.String())

	return &AuthResult{
		Token: token,
		User:  userToDTO(newUser),
	}, nil
}
