package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"paperbase/internal/domain"
)

// ErrBatchActive is returned when a batch is submitted while another runs.
var ErrBatchActive = errors.New("an indexing batch is already running")

// ErrEmptyBatch is returned for a submission with no items.
var ErrEmptyBatch = errors.New("empty batch")

// Indexer extracts per-page text for batches of articles on a background
// worker, one batch at a time. Catalog reads and writes for unrelated
// articles proceed normally while a batch runs; every store operation the
// worker issues commits on its own.
type Indexer struct {
	opener   DocumentOpener
	pages    PageIndexStore
	notifier Notifier
	logger   *slog.Logger

	mu     sync.Mutex
	active *Batch
}

func NewIndexer(
	opener DocumentOpener,
	pages PageIndexStore,
	notifier Notifier,
	logger *slog.Logger,
) *Indexer {
	return &Indexer{
		opener:   opener,
		pages:    pages,
		notifier: notifier,
		logger:   logger.With("component", "indexer"),
	}
}

// Batch is the handle for one submitted batch.
type Batch struct {
	items    []domain.BatchItem
	progress chan domain.Progress
	done     chan struct{}
	cancel   context.CancelFunc
	stats    domain.BatchStats
}

// Progress delivers one event per completed item, in processing order.
// The channel is closed when the batch finishes.
func (b *Batch) Progress() <-chan domain.Progress {
	return b.progress
}

// Cancel requests cooperative cancellation. It takes effect at the next item
// boundary; the in-flight item runs to completion.
func (b *Batch) Cancel() {
	b.cancel()
}

// Done is closed when the worker has terminated.
func (b *Batch) Done() <-chan struct{} {
	return b.done
}

// Wait blocks until the worker terminates and returns the final stats.
func (b *Batch) Wait() domain.BatchStats {
	<-b.done
	return b.stats
}

// SubmitBatch starts a background worker for the given items. Only one batch
// may run at a time; a second submission fails with ErrBatchActive.
func (ix *Indexer) SubmitBatch(ctx context.Context, items []domain.BatchItem) (*Batch, error) {
	if len(items) == 0 {
		return nil, ErrEmptyBatch
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ix.active != nil {
		return nil, ErrBatchActive
	}

	batchCtx, cancel := context.WithCancel(ctx)
	batch := &Batch{
		items: items,
		// Capacity covers every event, so the worker never blocks on a slow
		// consumer and delivery order is the processing order.
		progress: make(chan domain.Progress, len(items)),
		done:     make(chan struct{}),
		cancel:   cancel,
	}
	ix.active = batch

	go ix.run(batchCtx, batch)

	return batch, nil
}

func (ix *Indexer) run(ctx context.Context, batch *Batch) {
	start := time.Now()
	total := len(batch.items)

	ix.logger.Info("batch started", "items", total)

	completed := 0
	for _, item := range batch.items {
		// Item boundaries are the only cancellation points.
		if ctx.Err() != nil {
			batch.stats.Cancelled = total - completed
			ix.logger.Info("batch cancelled", "completed", completed, "abandoned", batch.stats.Cancelled)
			break
		}

		// A cancel request must not interrupt the in-flight item, so its
		// store writes run on a detached context.
		ok := ix.indexOne(context.WithoutCancel(ctx), item)
		completed++
		if ok {
			batch.stats.Succeeded++
		} else {
			batch.stats.Failed++
		}

		batch.progress <- domain.Progress{
			Completed: completed,
			Total:     total,
			FilePath:  item.FilePath,
			OK:        ok,
		}
	}

	batch.stats.Duration = time.Since(start)

	if ix.notifier != nil {
		if err := ix.notifier.BatchCompleted(context.WithoutCancel(ctx), &batch.stats); err != nil {
			ix.logger.Error("notify batch completed", "error", err)
		}
	}

	ix.logger.Info("batch finished",
		"succeeded", batch.stats.Succeeded,
		"failed", batch.stats.Failed,
		"cancelled", batch.stats.Cancelled,
		"duration", batch.stats.Duration,
	)

	close(batch.progress)

	// Release the slot before signalling completion, so a caller woken by
	// Wait can immediately submit the next batch.
	ix.mu.Lock()
	ix.active = nil
	ix.mu.Unlock()

	close(batch.done)
}

// indexOne processes a single item. Any failure leaves the article with
// is_indexed = false and is retriable by resubmitting the item.
func (ix *Indexer) indexOne(ctx context.Context, item domain.BatchItem) bool {
	logger := ix.logger.With("article_id", item.ArticleID, "path", item.FilePath)

	doc, err := ix.opener.Open(item.FilePath)
	if err != nil {
		logger.Error("open failed", "error", err)
		return false
	}
	defer doc.Close()

	// Drop the commit marker before touching the entry set.
	if err := ix.pages.ResetIndexed(ctx, item.ArticleID); err != nil {
		logger.Error("reset indexed flag", "error", err)
		return false
	}

	count := doc.PageCount()
	texts := make([]string, 0, count)
	for page := 1; page <= count; page++ {
		text, err := doc.ExtractText(page)
		if err != nil {
			logger.Error("extract failed", "page", page, "error", err)
			return false
		}
		texts = append(texts, text)
	}

	if err := ix.pages.ReplacePages(ctx, item.ArticleID, texts); err != nil {
		logger.Error("store pages", "error", err)
		return false
	}

	if ix.notifier != nil {
		if err := ix.notifier.ArticleIndexed(ctx, item.ArticleID, item.FilePath, count); err != nil {
			logger.Error("notify article indexed", "error", err)
		}
	}

	logger.Info("article indexed", "pages", count)
	return true
}
