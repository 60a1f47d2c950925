package user

import (
	"github.com/gin-gonic/gin"

	"github.com/helpdeskhq/helpdesk/internal/application/user/usecases"
	"github.com/helpdeskhq/helpdesk/internal/shared/utils"
)

type UpdateUserRequest struct {
	Name                   *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Role                   *string `json:"role,omitempty"`
	NotificationPreference *string `json:"notification_preference,omitempty"`
}

func (r *UpdateUserRequest) ToCommand(userID uint) usecases.UpdateUserCommand {
	return usecases.UpdateUserCommand{
		UserID:                 userID,
		Name:                   r.Name,
		Role:                   r.Role,
		NotificationPreference: r.NotificationPreference,
	}
}

type ListUsersRequest struct {
	Email    string
	Name     string
	Role     string
	Page     int
	PageSize int
	OrderBy  string
	Order    string
}

func (r *ListUsersRequest) ToQuery() usecases.ListUsersQuery {
	return usecases.ListUsersQuery{
		Email:    r.Email,
		Name:     r.Name,
		Role:     r.Role,
		Page:     r.Page,
		PageSize: r.PageSize,
		OrderBy:  r.OrderBy,
		Order:    r.Order,
	}
}

func parseListUsersRequest(c *gin.Context) *ListUsersRequest {
	pagination := utils.ParsePagination(c)

	return &ListUsersRequest{
		Email:    c.Query("email"),
		Name:     c.Query("name"),
		Role:     c.Query("role"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
		OrderBy:  c.Query("order_by"),
		Order:    c.Query("order"),
	}
}
