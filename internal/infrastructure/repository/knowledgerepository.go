package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/helpdeskhq/helpdesk/internal/domain/knowledge"
	"github.com/helpdeskhq/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/helpdeskhq/helpdesk/internal/infrastructure/persistence/models"
	"github.com/helpdeskhq/helpdesk/internal/shared/db"
)

// allowedArticleOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedArticleOrderByFields = map[string]bool{
	"id":            true,
	"title":         true,
	"category":      true,
	"author_id":     true,
	"helpful_count": true,
	"created_at":    true,
	"updated_at":    true,
}

type KnowledgeRepository struct {
	db     *gorm.DB
	mapper mappers.KnowledgeMapper
}

func NewKnowledgeRepository(db *gorm.DB) *KnowledgeRepository {
	return &KnowledgeRepository{
		db:     db,
		mapper: mappers.NewKnowledgeMapper(),
	}
}

func (r *KnowledgeRepository) Save(ctx context.Context, article *knowledge.Article) error {
	model := r.mapper.ToModel(article)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save article: %w", err)
	}

	if err := article.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *KnowledgeRepository) Update(ctx context.Context, article *knowledge.Article) error {
	model := r.mapper.ToModel(article)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.WithContext(ctx).
		Model(&models.KnowledgeArticleModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":    model.Title,
			"content":  model.Content,
			"category": model.Category,
			"keywords": model.Keywords,
			"version":  model.Version,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("article not found")
	}

	return nil
}

func (r *KnowledgeRepository) Delete(ctx context.Context, articleID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.WithContext(ctx).Delete(&models.KnowledgeArticleModel{}, articleID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("article not found")
	}
	return nil
}

func (r *KnowledgeRepository) GetByID(ctx context.Context, articleID uint) (*knowledge.Article, error) {
	var model models.KnowledgeArticleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.WithContext(ctx).First(&model, articleID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("article not found")
		}
		return nil, fmt.Errorf("failed to find article: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *KnowledgeRepository) List(
	ctx context.Context,
	filter knowledge.ArticleFilter,
) ([]*knowledge.Article, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.WithContext(ctx).Model(&models.KnowledgeArticleModel{})

	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.AuthorID != nil {
		query = query.Where("author_id = ?", *filter.AuthorID)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(keywords) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection.
	// Articles default to most-helpful first so the best answers surface.
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedArticleOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("helpful_count DESC").Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var articleModels []models.KnowledgeArticleModel
	if err := query.Find(&articleModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}

	articles := make([]*knowledge.Article, len(articleModels))
	for i := range articleModels {
		a, err := r.mapper.ToDomain(&articleModels[i])
		if err != nil {
			return nil, 0, err
		}
		articles[i] = a
	}

	return articles, total, nil
}

func (r *KnowledgeRepository) IncrementHelpfulCount(ctx context.Context, articleID uint) (int, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.WithContext(ctx).
		Model(&models.KnowledgeArticleModel{}).
		Where("id = ?", articleID).
		UpdateColumn("helpful_count", gorm.Expr("helpful_count + 1"))

	if result.Error != nil {
		return 0, fmt.Errorf("failed to increment helpful count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, fmt.Errorf("article not found")
	}

	var count int
	if err := tx.WithContext(ctx).
		Model(&models.KnowledgeArticleModel{}).
		Where("id = ?", articleID).
		Pluck("helpful_count", &count).Error; err != nil {
		return 0, fmt.Errorf("failed to read helpful count: %w", err)
	}

	return count, nil
}
