package usecases

import (
	"context"

	"github.com/helpdeskhq/helpdesk/internal/domain/user"
	"github.com/helpdeskhq/helpdesk/internal/shared/authorization"
	"github.com/helpdeskhq/helpdesk/internal/shared/errors"
	"github.com/helpdeskhq/helpdesk/internal/shared/logger"
	"github.com/helpdeskhq/helpdesk/internal/shared/utils"
)

type ListUsersQuery struct {
	Email    string
	Name     string
	Role     string
	Page     int
	PageSize int
	OrderBy  string
	Order    string
}

type ListUsersResult struct {
	Users    []*UserDTO `json:"users"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	if query.Role != "" && !authorization.UserRole(query.Role).IsValid() {
		return nil, errors.NewValidationError("invalid role filter")
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := user.ListFilter{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
		Email:    query.Email,
		Name:     query.Name,
		Role:     query.Role,
		OrderBy:  query.OrderBy,
		Order:    query.Order,
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}

	dtos := make([]*UserDTO, len(users))
	for i, u := range users {
		dtos[i] = userToDTO(u)
	}

	return &ListUsersResult{
		Users:    dtos,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}
