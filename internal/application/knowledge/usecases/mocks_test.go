package usecases

import (
	"context"

	"github.com/helpdeskhq/helpdesk/internal/domain/knowledge"
	"github.com/helpdeskhq/helpdesk/internal/shared/logger"
)

type mockArticleRepository struct {
	SaveFunc                  func(ctx context.Context, article *knowledge.Article) error
	UpdateFunc                func(ctx context.Context, article *knowledge.Article) error
	DeleteFunc                func(ctx context.Context, articleID uint) error
	GetByIDFunc               func(ctx context.Context, articleID uint) (*knowledge.Article, error)
	ListFunc                  func(ctx context.Context, filters knowledge.ArticleFilter) ([]*knowledge.Article, int64, error)
	IncrementHelpfulCountFunc func(ctx context.Context, articleID uint) (int, error)
}

func (m *mockArticleRepository) Save(ctx context.Context, article *knowledge.Article) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, article)
	}
	return nil
}

func (m *mockArticleRepository) Update(ctx context.Context, article *knowledge.Article) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, article)
	}
	return nil
}

func (m *mockArticleRepository) Delete(ctx context.Context, articleID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, articleID)
	}
	return nil
}

func (m *mockArticleRepository) GetByID(ctx context.Context, articleID uint) (*knowledge.Article, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, articleID)
	}
	return nil, nil
}

func (m *mockArticleRepository) List(ctx context.Context, filters knowledge.ArticleFilter) ([]*knowledge.Article, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, 0, nil
}

func (m *mockArticleRepository) IncrementHelpfulCount(ctx context.Context, articleID uint) (int, error) {
	if m.IncrementHelpfulCountFunc != nil {
		return m.IncrementHelpfulCountFunc(ctx, articleID)
	}
	return 0, nil
}

type mockMarkdownRenderer struct {
	ToHTMLSanitizedFunc func(markdown string) (string, error)
}

func (m *mockMarkdownRenderer) ToHTMLSanitized(markdown string) (string, error) {
	if m.ToHTMLSanitizedFunc != nil {
		return m.ToHTMLSanitizedFunc(markdown)
	}
	return "<p>" + markdown + "</p>", nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
