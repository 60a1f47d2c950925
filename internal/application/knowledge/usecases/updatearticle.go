package usecases

import (
	"context"

	"github.com/helpdeskhq/helpdesk/internal/domain/knowledge"
	vo "github.com/helpdeskhq/helpdesk/internal/domain/knowledge/valueobjects"
	"github.com/helpdeskhq/helpdesk/internal/shared/authorization"
	"github.com/helpdeskhq/helpdesk/internal/shared/errors"
	"github.com/helpdeskhq/helpdesk/internal/shared/logger"
)

type UpdateArticleCommand struct {
	ArticleID uint
	UserID    uint
	UserRole  authorization.UserRole

	Title    *string
	Content  *string
	Category *string
	Keywords []string
}

type UpdateArticleUseCase struct {
	articleRepo knowledge.ArticleRepository
	logger      logger.Interface
}

func NewUpdateArticleUseCase(
	articleRepo knowledge.ArticleRepository,
	logger logger.Interface,
) *UpdateArticleUseCase {
	return &UpdateArticleUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *UpdateArticleUseCase) Execute(ctx context.Context, cmd UpdateArticleCommand) (*ArticleDTO, error) {
	if cmd.ArticleID == 0 {
		return nil, errors.NewValidationError("article ID is required")
	}

	article, err := uc.articleRepo.GetByID(ctx, cmd.ArticleID)
	if err != nil {
		uc.logger.Errorw("failed to find article", "error", err, "article_id", cmd.ArticleID)
		return nil, errors.NewNotFoundError("article not found")
	}

	if !cmd.UserRole.IsStaff() && article.AuthorID() != cmd.UserID {
		return nil, errors.NewForbiddenError("only the author or staff may update this article")
	}

	if cmd.Title != nil {
		if err := article.UpdateTitle(*cmd.Title); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Content != nil {
		if err := article.UpdateContent(*cmd.Content); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Category != nil {
		category, err := vo.NewCategory(*cmd.Category)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := article.ChangeCategory(category); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Keywords != nil {
		if err := article.ReplaceKeywords(cmd.Keywords); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.articleRepo.Update(ctx, article); err != nil {
		uc.logger.Errorw("failed to update article", "error", err, "article_id", cmd.ArticleID)
		return nil, errors.NewInternalError("failed to update article")
	}

	uc.logger.Infow("article updated successfully", "article_id", article.ID())

	return articleToDTO(article), nil
}
