package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"paperbase/internal/domain"
)

// CatalogService handles file intake: it computes file size and page count
// before insertion and reports duplicates as skips, not faults.
type CatalogService struct {
	articles ArticleStore
	opener   DocumentOpener
	notifier Notifier
	logger   *slog.Logger
}

func NewCatalogService(
	articles ArticleStore,
	opener DocumentOpener,
	notifier Notifier,
	logger *slog.Logger,
) *CatalogService {
	return &CatalogService{
		articles: articles,
		opener:   opener,
		notifier: notifier,
		logger:   logger.With("component", "catalog"),
	}
}

// AddFile catalogs one PDF. An empty title defaults to the file's base name.
// A path that is already cataloged returns domain.ErrDuplicatePath.
func (c *CatalogService) AddFile(ctx context.Context, path, title string, groupID *int64) (*domain.Article, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	doc, err := c.opener.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	pages := doc.PageCount()
	doc.Close()

	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	article := &domain.Article{
		Title:     title,
		FilePath:  path,
		GroupID:   groupID,
		Pages:     pages,
		FileSize:  info.Size(),
		DateAdded: time.Now().UTC(),
	}

	id, err := c.articles.Add(ctx, article)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicatePath) {
			c.logger.Info("file already cataloged", "path", path)
		}
		return nil, err
	}
	article.ID = id

	if c.notifier != nil {
		if err := c.notifier.ArticleAdded(ctx, article); err != nil {
			c.logger.Error("notify article added", "error", err)
		}
	}

	c.logger.Info("article added", "id", id, "path", path, "pages", pages)
	return article, nil
}

// AddFolder catalogs every PDF directly inside dir. Subfolders are not
// descended into. Per-file failures are tallied, never fatal. The returned
// items are the newly added articles, ready for batch indexing.
func (c *CatalogService) AddFolder(ctx context.Context, dir string, groupID *int64) (*domain.ImportStats, []domain.BatchItem, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read folder: %w", err)
	}

	stats := &domain.ImportStats{}
	var items []domain.BatchItem

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		article, err := c.AddFile(ctx, path, "", groupID)
		switch {
		case errors.Is(err, domain.ErrDuplicatePath):
			stats.Skipped++
		case err != nil:
			c.logger.Error("import file failed", "path", path, "error", err)
			stats.Failed++
		default:
			stats.Added++
			items = append(items, domain.BatchItem{ArticleID: article.ID, FilePath: article.FilePath})
		}
	}

	c.logger.Info("folder import finished",
		"dir", dir,
		"added", stats.Added,
		"skipped", stats.Skipped,
		"failed", stats.Failed,
	)

	return stats, items, nil
}
