package usecases

import (
	"context"

	"github.com/helpdeskhq/helpdesk/internal/domain/knowledge"
	"github.com/helpdeskhq/helpdesk/internal/shared/errors"
	"github.com/helpdeskhq/helpdesk/internal/shared/logger"
)

type MarkHelpfulCommand struct {
	ArticleID uint
}

type MarkHelpfulResult struct {
	ArticleID    uint `json:"article_id"`
	HelpfulCount int  `json:"helpful_count"`
}

type MarkHelpfulUseCase struct {
	articleRepo knowledge.ArticleRepository
	logger      logger.Interface
}

func NewMarkHelpfulUseCase(
	articleRepo knowledge.ArticleRepository,
	logger logger.Interface,
) *MarkHelpfulUseCase {
	return &MarkHelpfulUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *MarkHelpfulUseCase) Execute(ctx context.Context, cmd MarkHelpfulCommand) (*MarkHelpfulResult, error) {
	if cmd.ArticleID == 0 {
		return nil, errors.NewValidationError("article ID is required")
	}

	// The increment happens in a single SQL statement so concurrent votes
	// never lose updates.
	count, err := uc.articleRepo.IncrementHelpfulCount(ctx, cmd.ArticleID)
	if err != nil {
		uc.logger.Errorw("failed to increment helpful count", "error", err, "article_id", cmd.ArticleID)
		return nil, errors.NewNotFoundError("article not found")
	}

	return &MarkHelpfulResult{
		ArticleID:    cmd.ArticleID,
		HelpfulCount: count,
	}, nil
}
