package domain

import (
	"errors"
	"time"
)

var (
	// ErrDuplicatePath is returned when a file path is already cataloged.
	// Callers treat it as a normal outcome (the file is skipped), not a fault.
	ErrDuplicatePath = errors.New("file path already cataloged")

	// ErrDuplicateName is returned when a group name is already taken.
	ErrDuplicateName = errors.New("group name already exists")

	// ErrNotFound is returned by lookups that require the row to exist.
	ErrNotFound = errors.New("not found")
)

// Article is a cataloged PDF file. FilePath is the natural key.
type Article struct {
	ID        int64      `db:"id"`
	Title     string     `db:"title"`
	FilePath  string     `db:"file_path"`
	GroupID   *int64     `db:"group_id"` // weak reference, nulled on group deletion
	Pages     int        `db:"pages"`
	IsRead    bool       `db:"is_read"`
	IsIndexed bool       `db:"is_indexed"`
	DateAdded time.Time  `db:"date_added"`
	DateRead  *time.Time `db:"date_read"`
	FileSize  int64      `db:"file_size"`
	Keywords  string     `db:"keywords"`
	Notes     string     `db:"notes"`
}

// Group is a flat, user-defined category. Articles reference it weakly.
type Group struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Color       string    `db:"color"`
	DateCreated time.Time `db:"date_created"`
}

// PageText is one page's extracted text for one article.
type PageText struct {
	ID         int64  `db:"id"`
	ArticleID  int64  `db:"article_id"`
	PageNumber int    `db:"page_number"` // 1-based
	Content    string `db:"content"`
}

// PageMatch is a page-search hit joined with its article.
type PageMatch struct {
	ArticleID  int64  `db:"article_id"`
	Title      string `db:"title"`
	FilePath   string `db:"file_path"`
	PageNumber int    `db:"page_number"`
	Content    string `db:"content"`
}

// Statistics holds aggregate counts over the catalog. Sums are zero, never
// null, on an empty catalog.
type Statistics struct {
	TotalArticles   int `db:"total_articles"`
	ReadArticles    int `db:"read_articles"`
	TotalPages      int `db:"total_pages"`
	PagesRead       int `db:"pages_read"`
	IndexedArticles int `db:"indexed_articles"`
}
