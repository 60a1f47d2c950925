package usecases

import (
	"context"

	"github.com/helpdeskhq/helpdesk/internal/domain/user"
	"github.com/helpdeskhq/helpdesk/internal/shared/errors"
	"github.com/helpdeskhq/helpdesk/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	userRepo     user.Repository
	hasher       PasswordHasher
	tokenService TokenService
	logger       logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokenService TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*AuthResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewInvalidCredentialsError()
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, errors.NewInternalError("failed to look up user")
	}

	if existingUser == nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := uc.hasher.Verify(cmd.Password, existingUser.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "user_id", existingUser.ID())
		return nil, errors.NewInvalidCredentialsError()
	}

	token, err := uc.tokenService.Generate(existingUser.ID(), existingUser.Email().String(), existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "error", err, "user_id", existingUser.ID())
		return nil, errors.NewInternalError("failed to generate token")
	}

	uc.logger.Infow("user logged in successfully", "user_id", existingUser.ID())

	return &AuthResult{
		Token: token,
		User:  userToDTO(existingUser),
	}, nil
}
