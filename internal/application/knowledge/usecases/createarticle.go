package usecases

import (
	"context"

	"github.com/helpdeskhq/helpdesk/internal/domain/knowledge"
	vo "github.com/helpdeskhq/helpdesk/internal/domain/knowledge/valueobjects"
	"github.com/helpdeskhq/helpdesk/internal/shared/errors"
	"github.com/helpdeskhq/helpdesk/internal/shared/logger"
)

type CreateArticleCommand struct {
	Title    string
	Content  string
	Category string
	Keywords []string
	AuthorID uint
}

type CreateArticleUseCase struct {
	articleRepo knowledge.ArticleRepository
	logger      logger.Interface
}

func NewCreateArticleUseCase(
	articleRepo knowledge.ArticleRepository,
	logger logger.Interface,
) *CreateArticleUseCase {
	return &CreateArticleUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *CreateArticleUseCase) Execute(ctx context.Context, cmd CreateArticleCommand) (*ArticleDTO, error) {
	uc.logger.Infow("executing create article use case", "title", cmd.Title, "author_id", cmd.AuthorID)

	if cmd.AuthorID == 0 {
		return nil, errors.NewValidationError("author ID is required")
	}

	category, err := vo.NewCategory(cmd.Category)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	article, err := knowledge.NewArticle(
		cmd.Title,
		cmd.Content,
		category,
		cmd.Keywords,
		cmd.AuthorID,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.articleRepo.Save(ctx, article); err != nil {
		uc.logger.Errorw("failed to save article", "error", err)
		return nil, errors.NewInternalError("failed to save article")
	}

	uc.logger.Infow("article created successfully", "article_id", article.ID())

	return articleToDTO(article), nil
}
