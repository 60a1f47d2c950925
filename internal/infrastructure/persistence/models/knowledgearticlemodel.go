package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/helpdeskhq/helpdesk/internal/shared/constants"
)

// KnowledgeArticleModel represents the database persistence model for
// knowledge base articles. Keywords are stored as a comma-delimited string.
type KnowledgeArticleModel struct {
	ID           uint   `gorm:"primaryKey"`
	Title        string `gorm:"size:200;not null"`
	Content      string `gorm:"type:text;not null"`
	Category     string `gorm:"size:30;not null;index"`
	Keywords     string `gorm:"size:1000"`
	AuthorID     uint   `gorm:"not null;index"`
	HelpfulCount int    `gorm:"not null;default:0;index"`
	Version      int    `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (KnowledgeArticleModel) TableName() string {
	return constants.TableKnowledgeArticles
}
