package usecases

import (
	"context"

	"github.com/helpdeskhq/helpdesk/internal/domain/knowledge"
	"github.com/helpdeskhq/helpdesk/internal/shared/authorization"
	"github.com/helpdeskhq/helpdesk/internal/shared/errors"
	"github.com/helpdeskhq/helpdesk/internal/shared/logger"
)

type DeleteArticleCommand struct {
	ArticleID uint
	UserID    uint
	UserRole  authorization.UserRole
}

type DeleteArticleUseCase struct {
	articleRepo knowledge.ArticleRepository
	logger      logger.Interface
}

func NewDeleteArticleUseCase(
	articleRepo knowledge.ArticleRepository,
	logger logger.Interface,
) *DeleteArticleUseCase {
	return &DeleteArticleUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *DeleteArticleUseCase) Execute(ctx context.Context, cmd DeleteArticleCommand) error {
	if cmd.ArticleID == 0 {
		return errors.NewValidationError("article ID is required")
	}

	article, err := uc.articleRepo.GetByID(ctx, cmd.ArticleID)
	if err != nil {
		uc.logger.Errorw("failed to find article", "error", err, "article_id", cmd.ArticleID)
		return errors.NewNotFoundError("article not found")
	}

	if !cmd.UserRole.IsStaff() && article.AuthorID() != cmd.UserID {
		return errors.NewForbiddenError("only the author or staff may delete this article")
	}

	if err := uc.articleRepo.Delete(ctx, cmd.ArticleID); err != nil {
		uc.logger.Errorw("failed to delete article", "error", err, "article_id", cmd.ArticleID)
		return errors.NewInternalError("failed to delete article")
	}

	uc.logger.Infow("article deleted successfully", "article_id", cmd.ArticleID, "deleted_by", cmd.UserID)
	return nil
}
