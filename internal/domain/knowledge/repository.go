package knowledge

import (
	"context"

	vo "github.com/helpdeskhq/helpdesk/internal/domain/knowledge/valueobjects"
)

type ArticleRepository interface {
	Save(ctx context.Context, article *Article) error
	Update(ctx context.Context, article *Article) error
	Delete(ctx context.Context, articleID uint) error
	GetByID(ctx context.Context, articleID uint) (*Article, error)
	List(ctx context.Context, filters ArticleFilter) ([]*Article, int64, error)

	// IncrementHelpfulCount atomically bumps the helpful counter and
	// returns the new value.
	IncrementHelpfulCount(ctx context.Context, articleID uint) (int, error)
}

type ArticleFilter struct {
	Category *vo.Category
	AuthorID *uint

	// Search matches against title, content, and keywords.
	Search string

	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
