package usecases

import (
	"time"

	"github.com/helpdeskhq/helpdesk/internal/domain/knowledge"
)

// ArticleDTO is the application-layer representation of a knowledge base
// article. ContentHTML is only populated on single-article reads.
type ArticleDTO struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ContentHTML  string    `json:"content_html,omitempty"`
	Category     string    `json:"category"`
	Keywords     []string  `json:"keywords"`
	AuthorID     uint      `json:"author_id"`
	HelpfulCount int       `json:"helpful_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func articleToDTO(a *knowledge.Article) *ArticleDTO {
	return &ArticleDTO{
		ID:           a.ID(),
		Title:        a.Title(),
		Content:      a.Content(),
		Category:     a.Category().String(),
		Keywords:     a.Keywords(),
		AuthorID:     a.AuthorID(),
		HelpfulCount: a.HelpfulCount(),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}
}
