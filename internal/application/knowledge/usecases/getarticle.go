package usecases

import (
	"context"

	"github.com/helpdeskhq/helpdesk/internal/domain/knowledge"
	"github.com/helpdeskhq/helpdesk/internal/shared/errors"
	"github.com/helpdeskhq/helpdesk/internal/shared/logger"
)

type GetArticleQuery struct {
	ArticleID uint
}

type GetArticleUseCase struct {
	articleRepo knowledge.ArticleRepository
	renderer    MarkdownRenderer
	logger      logger.Interface
}

func NewGetArticleUseCase(
	articleRepo knowledge.ArticleRepository,
	renderer MarkdownRenderer,
	logger logger.Interface,
) *GetArticleUseCase {
	return &GetArticleUseCase{
		articleRepo: articleRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *GetArticleUseCase) Execute(ctx context.Context, query GetArticleQuery) (*ArticleDTO, error) {
	if query.ArticleID == 0 {
		return nil, errors.NewValidationError("article ID is required")
	}

	article, err := uc.articleRepo.GetByID(ctx, query.ArticleID)
	if err != nil {
		uc.logger.Errorw("failed to find article", "error", err, "article_id", query.ArticleID)
		return nil, errors.NewNotFoundError("article not found")
	}

	dto := articleToDTO(article)

	// A rendering failure degrades to raw markdown rather than failing the read.
	html, err := uc.renderer.ToHTMLSanitized(article.Content())
	if err != nil {
		uc.logger.Warnw("failed to render article markdown", "error", err, "article_id", article.ID())
	} else {
		dto.ContentHTML = html
	}

	return dto, nil
}
