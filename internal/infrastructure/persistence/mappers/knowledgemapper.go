package mappers

import (
	"fmt"
	"strings"

	"github.com/helpdeskhq/helpdesk/internal/domain/knowledge"
	vo "github.com/helpdeskhq/helpdesk/internal/domain/knowledge/valueobjects"
	"github.com/helpdeskhq/helpdesk/internal/infrastructure/persistence/models"
)

// KnowledgeMapper handles the conversion between Article domain entities and persistence models.
type KnowledgeMapper interface {
	ToModel(article *knowledge.Article) *models.KnowledgeArticleModel
	ToDomain(model *models.KnowledgeArticleModel) (*knowledge.Article, error)
}

// KnowledgeMapperImpl is the concrete implementation of KnowledgeMapper.
type KnowledgeMapperImpl struct{}

// NewKnowledgeMapper creates a new KnowledgeMapper.
func NewKnowledgeMapper() KnowledgeMapper {
	return &KnowledgeMapperImpl{}
}

// ToModel converts an article domain entity to a persistence model.
func (m *KnowledgeMapperImpl) ToModel(article *knowledge.Article) *models.KnowledgeArticleModel {
	return &models.KnowledgeArticleModel{
		ID:           article.ID(),
		Title:        article.Title(),
		Content:      article.Content(),
		Category:     article.Category().String(),
		Keywords:     strings.Join(article.Keywords(), ","),
		AuthorID:     article.AuthorID(),
		HelpfulCount: article.HelpfulCount(),
		Version:      article.Version(),
		CreatedAt:    article.CreatedAt(),
		UpdatedAt:    article.UpdatedAt(),
	}
}

// ToDomain converts an article persistence model to a domain entity.
func (m *KnowledgeMapperImpl) ToDomain(model *models.KnowledgeArticleModel) (*knowledge.Article, error) {
	category, err := vo.NewCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("invalid category in article record (id=%d): %w", model.ID, err)
	}

	var keywords []string
	if model.Keywords != "" {
		keywords = strings.Split(model.Keywords, ",")
	}

	return knowledge.ReconstructArticle(
		model.ID,
		model.Title,
		model.Content,
		category,
		keywords,
		model.AuthorID,
		model.HelpfulCount,
		model.CreatedAt,
		model.UpdatedAt,
		model.Version,
	)
}
