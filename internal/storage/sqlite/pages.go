package sqlite

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"paperbase/internal/domain"
)

type PageIndexStore struct {
	db *sqlx.DB
}

func NewPageIndexStore(db *sqlx.DB) *PageIndexStore {
	return &PageIndexStore{db: db}
}

// ResetIndexed clears the commit marker before re-processing starts, so an
// article never shows as indexed while its entry set is being rebuilt.
func (s *PageIndexStore) ResetIndexed(ctx context.Context, articleID int64) error {
	_, err := s.db.ExecContext(ctx, "UPDATE articles SET is_indexed = 0 WHERE id = ?", articleID)
	return err
}

// ReplacePages swaps the article's entire index entry set in one transaction:
// old entries out, one entry per page in ascending order in, page count
// refreshed, and is_indexed set last. Readers never observe a mixed set, and
// a crash mid-item leaves the commit marker false.
func (s *PageIndexStore) ReplacePages(ctx context.Context, articleID int64, pages []string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM article_index WHERE article_id = ?", articleID); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO article_index (article_id, page_number, content) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, content := range pages {
		if _, err := stmt.ExecContext(ctx, articleID, i+1, content); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE articles SET is_indexed = 1, pages = ? WHERE id = ?",
		len(pages), articleID,
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *PageIndexStore) PagesForArticle(ctx context.Context, articleID int64) ([]domain.PageText, error) {
	pages := []domain.PageText{}
	query := `
		SELECT id, article_id, page_number, content
		FROM article_index
		WHERE article_id = ?
		ORDER BY page_number`

	if err := s.db.SelectContext(ctx, &pages, query, articleID); err != nil {
		return nil, err
	}
	return pages, nil
}

// Search matches extracted page text case-insensitively as a substring.
// No ranking; results come back in article title then page order.
func (s *PageIndexStore) Search(ctx context.Context, text string) ([]domain.PageMatch, error) {
	matches := []domain.PageMatch{}
	if strings.TrimSpace(text) == "" {
		return matches, nil
	}

	query := `
		SELECT a.id AS article_id, a.title, a.file_path, i.page_number, i.content
		FROM article_index i
		JOIN articles a ON a.id = i.article_id
		WHERE INSTR(LOWER(i.content), LOWER(?)) > 0
		ORDER BY a.title, i.page_number`

	if err := s.db.SelectContext(ctx, &matches, query, text); err != nil {
		return nil, err
	}
	return matches, nil
}
