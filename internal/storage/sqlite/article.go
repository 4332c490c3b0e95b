package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"paperbase/internal/domain"
)

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

const articleColumns = `id, title, file_path, group_id, pages, is_read, is_indexed,
	date_added, date_read, file_size, keywords, notes`

// Add inserts a new article. A duplicate file_path yields
// domain.ErrDuplicatePath and leaves the catalog unchanged.
func (s *ArticleStore) Add(ctx context.Context, article *domain.Article) (int64, error) {
	if article.DateAdded.IsZero() {
		article.DateAdded = time.Now().UTC()
	}

	query := `
		INSERT INTO articles (
			title, file_path, group_id, pages, is_read, is_indexed,
			date_added, file_size, keywords, notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(file_path) DO NOTHING`

	res, err := s.db.ExecContext(ctx, query,
		article.Title,
		article.FilePath,
		article.GroupID,
		article.Pages,
		article.IsRead,
		article.IsIndexed,
		article.DateAdded,
		article.FileSize,
		article.Keywords,
		article.Notes,
	)
	if err != nil {
		return 0, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, domain.ErrDuplicatePath
	}

	return res.LastInsertId()
}

func (s *ArticleStore) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	var article domain.Article
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = ?`

	err := s.db.GetContext(ctx, &article, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// List returns articles, optionally restricted to one group (flat, no
// inheritance) and to a case-insensitive substring match against title OR
// keywords. Results come back newest first.
func (s *ArticleStore) List(ctx context.Context, groupID *int64, search string) ([]domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles`
	var clauses []string
	var args []interface{}

	if groupID != nil {
		clauses = append(clauses, "group_id = ?")
		args = append(args, *groupID)
	}
	if search != "" {
		needle := "%" + strings.ToLower(search) + "%"
		clauses = append(clauses, "(LOWER(title) LIKE ? OR LOWER(keywords) LIKE ?)")
		args = append(args, needle, needle)
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY date_added DESC, id DESC"

	articles := []domain.Article{}
	if err := s.db.SelectContext(ctx, &articles, query, args...); err != nil {
		return nil, err
	}
	return articles, nil
}

// MarkRead sets is_read and stamps date_read on the unread→read transition.
// Calling it on an already-read article keeps the original date.
func (s *ArticleStore) MarkRead(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE articles SET is_read = 1, date_read = ? WHERE id = ? AND is_read = 0",
		time.Now().UTC(), id,
	)
	return err
}

func (s *ArticleStore) MarkUnread(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE articles SET is_read = 0, date_read = NULL WHERE id = ?",
		id,
	)
	return err
}

// GetReadStatus fails-safe to false when the article does not exist.
func (s *ArticleStore) GetReadStatus(ctx context.Context, id int64) (bool, error) {
	var isRead bool
	err := s.db.GetContext(ctx, &isRead, "SELECT is_read FROM articles WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return isRead, nil
}

func (s *ArticleStore) MoveToGroup(ctx context.Context, id int64, groupID *int64) error {
	_, err := s.db.ExecContext(ctx, "UPDATE articles SET group_id = ? WHERE id = ?", groupID, id)
	return err
}

// Remove deletes the article and its index entries in one transaction.
func (s *ArticleStore) Remove(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM article_index WHERE article_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *ArticleStore) Statistics(ctx context.Context) (*domain.Statistics, error) {
	query := `
		SELECT
			COUNT(*) AS total_articles,
			COALESCE(SUM(is_read), 0) AS read_articles,
			COALESCE(SUM(pages), 0) AS total_pages,
			COALESCE(SUM(CASE WHEN is_read = 1 THEN pages ELSE 0 END), 0) AS pages_read,
			COALESCE(SUM(is_indexed), 0) AS indexed_articles
		FROM articles`

	var stats domain.Statistics
	if err := s.db.GetContext(ctx, &stats, query); err != nil {
		return nil, err
	}
	return &stats, nil
}
