package usecases

import (
	"context"

	"github.com/helpdeskhq/helpdesk/internal/domain/knowledge"
	vo "github.com/helpdeskhq/helpdesk/internal/domain/knowledge/valueobjects"
	"github.com/helpdeskhq/helpdesk/internal/shared/errors"
	"github.com/helpdeskhq/helpdesk/internal/shared/logger"
	"github.com/helpdeskhq/helpdesk/internal/shared/utils"
)

type ListArticlesQuery struct {
	Category  string
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListArticlesResult struct {
	Articles []*ArticleDTO `json:"articles"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

type ListArticlesUseCase struct {
	articleRepo knowledge.ArticleRepository
	logger      logger.Interface
}

func NewListArticlesUseCase(
	articleRepo knowledge.ArticleRepository,
	logger logger.Interface,
) *ListArticlesUseCase {
	return &ListArticlesUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *ListArticlesUseCase) Execute(ctx context.Context, query ListArticlesQuery) (*ListArticlesResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := knowledge.ArticleFilter{
		Search:    query.Search,
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}

	if query.Category != "" {
		category := vo.Category(query.Category)
		if !category.IsValid() {
			return nil, errors.NewValidationError("invalid category filter")
		}
		filter.Category = &category
	}

	articles, total, err := uc.articleRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list articles", "error", err)
		return nil, errors.NewInternalError("failed to list articles")
	}

	dtos := make([]*ArticleDTO, len(articles))
	for i, a := range articles {
		dtos[i] = articleToDTO(a)
	}

	return &ListArticlesResult{
		Articles: dtos,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}
