package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"paperbase/internal/domain"
	"paperbase/internal/pdf"
)

type ArticleStore interface {
	Add(ctx context.Context, article *domain.Article) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Article, error)
	List(ctx context.Context, groupID *int64, search string) ([]domain.Article, error)
	MarkRead(ctx context.Context, id int64) error
	MarkUnread(ctx context.Context, id int64) error
	MoveToGroup(ctx context.Context, id int64, groupID *int64) error
	Remove(ctx context.Context, id int64) error
}

type PageIndexStore interface {
	ResetIndexed(ctx context.Context, articleID int64) error
	ReplacePages(ctx context.Context, articleID int64, pages []string) error
}

type DocumentOpener interface {
	Open(path string) (pdf.Document, error)
}

type Notifier interface {
	ArticleAdded(ctx context.Context, article *domain.Article) error
	ArticleIndexed(ctx context.Context, articleID int64, path string, pages int) error
	BatchCompleted(ctx context.Context, stats *domain.BatchStats) error
	Close() error
}
