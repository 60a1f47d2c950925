package knowledge

import (
	"github.com/gin-gonic/gin"

	"github.com/helpdeskhq/helpdesk/internal/application/knowledge/usecases"
	"github.com/helpdeskhq/helpdesk/internal/shared/authorization"
	"github.com/helpdeskhq/helpdesk/internal/shared/utils"
)

type CreateArticleRequest struct {
	Title    string   `json:"title" binding:"required,max=200"`
	Content  string   `json:"content" binding:"required"`
	Category string   `json:"category" binding:"required"`
	Keywords []string `json:"keywords,omitempty"`
}

func (r *CreateArticleRequest) ToCommand(authorID uint) usecases.CreateArticleCommand {
	return usecases.CreateArticleCommand{
		Title:    r.Title,
		Content:  r.Content,
		Category: r.Category,
		Keywords: r.Keywords,
		AuthorID: authorID,
	}
}

type UpdateArticleRequest struct {
	Title    *string  `json:"title,omitempty" binding:"omitempty,max=200"`
	Content  *string  `json:"content,omitempty"`
	Category *string  `json:"category,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

func (r *UpdateArticleRequest) ToCommand(articleID, userID uint, role authorization.UserRole) usecases.UpdateArticleCommand {
	return usecases.UpdateArticleCommand{
		ArticleID: articleID,
		UserID:    userID,
		UserRole:  role,
		Title:     r.Title,
		Content:   r.Content,
		Category:  r.Category,
		Keywords:  r.Keywords,
	}
}

type ListArticlesRequest struct {
	Category  string
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

func (r *ListArticlesRequest) ToQuery() usecases.ListArticlesQuery {
	return usecases.ListArticlesQuery{
		Category:  r.Category,
		Search:    r.Search,
		Page:      r.Page,
		PageSize:  r.PageSize,
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
	}
}

func parseListArticlesRequest(c *gin.Context) *ListArticlesRequest {
	pagination := utils.ParsePagination(c)

	return &ListArticlesRequest{
		Category:  c.Query("category"),
		Search:    c.Query("search"),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
}
