package knowledge

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/helpdeskhq/helpdesk/internal/domain/knowledge/valueobjects"
)

const (
	MaxTitleLength   = 200
	MaxContentLength = 50000
	MaxKeywords      = 20
)

// Article is a knowledge base article aggregate. Keywords are normalized
// to lowercase and deduplicated.
type Article struct {
	id           uint
	title        string
	content      string
	category     vo.Category
	keywords     []string
	authorID     uint
	helpfulCount int
	createdAt    time.Time
	updatedAt    time.Time
	version      int
}

// NewArticle creates a new knowledge base article
func NewArticle(
	title string,
	content string,
	category vo.Category,
	keywords []string,
	authorID uint,
) (*Article, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	if content == "" {
		return nil, fmt.Errorf("content is required")
	}
	if len(content) > MaxContentLength {
		return nil, fmt.Errorf("content exceeds maximum length of %d characters", MaxContentLength)
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	normalized, err := normalizeKeywords(keywords)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Article{
		title:     title,
		content:   content,
		category:  category,
		keywords:  normalized,
		authorID:  authorID,
		createdAt: now,
		updatedAt: now,
		version:   1,
	}, nil
}

// ReconstructArticle reconstructs an article from persistence
func ReconstructArticle(
	id uint,
	title string,
	content string,
	category vo.Category,
	keywords []string,
	authorID uint,
	helpfulCount int,
	createdAt, updatedAt time.Time,
	version int,
) (*Article, error) {
	if id == 0 {
		return nil, fmt.Errorf("article ID cannot be zero")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	if keywords == nil {
		keywords = []string{}
	}

	return &Article{
		id:           id,
		title:        title,
		content:      content,
		category:     category,
		keywords:     keywords,
		authorID:     authorID,
		helpfulCount: helpfulCount,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		version:      version,
	}, nil
}

func (a *Article) ID() uint {
	return a.id
}

func (a *Article) Title() string {
	return a.title
}

func (a *Article) Content() string {
	return a.content
}

func (a *Article) Category() vo.Category {
	return a.category
}

func (a *Article) Keywords() []string {
	keywordsCopy := make([]string, len(a.keywords))
	copy(keywordsCopy, a.keywords)
	return keywordsCopy
}

func (a *Article) AuthorID() uint {
	return a.authorID
}

func (a *Article) HelpfulCount() int {
	return a.helpfulCount
}

func (a *Article) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Article) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Article) Version() int {
	return a.version
}

func (a *Article) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("article ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("article ID cannot be zero")
	}
	a.id = id
	return nil
}

// UpdateTitle replaces the article title
func (a *Article) UpdateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}

	if a.title == title {
		return nil
	}

	a.title = title
	a.touch()
	return nil
}

// UpdateContent replaces the article body
func (a *Article) UpdateContent(content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return fmt.Errorf("content is required")
	}
	if len(content) > MaxContentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", MaxContentLength)
	}

	if a.content == content {
		return nil
	}

	a.content = content
	a.touch()
	return nil
}

// ChangeCategory moves the article into a different category
func (a *Article) ChangeCategory(category vo.Category) error {
	if !category.IsValid() {
		return fmt.Errorf("invalid category: %s", category)
	}

	if a.category == category {
		return nil
	}

	a.category = category
	a.touch()
	return nil
}

// ReplaceKeywords replaces the article's search keywords
func (a *Article) ReplaceKeywords(keywords []string) error {
	normalized, err := normalizeKeywords(keywords)
	if err != nil {
		return err
	}

	a.keywords = normalized
	a.touch()
	return nil
}

// MarkHelpful increments the helpful counter. The persistence layer is
// expected to perform the increment atomically; this keeps the in-memory
// aggregate consistent after a successful increment.
func (a *Article) MarkHelpful() {
	a.helpfulCount++
	a.touch()
}

func (a *Article) touch() {
	a.updatedAt = time.Now()
	a.version++
}

func normalizeKeywords(keywords []string) ([]string, error) {
	if len(keywords) > MaxKeywords {
		return nil, fmt.Errorf("at most %d keywords are allowed", MaxKeywords)
	}

	seen := make(map[string]bool, len(keywords))
	normalized := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			continue
		}
		if strings.Contains(kw, ",") {
			return nil, fmt.Errorf("keyword cannot contain commas: %s", kw)
		}
		seen[kw] = true
		normalized = append(normalized, kw)
	}

	return normalized, nil
}
