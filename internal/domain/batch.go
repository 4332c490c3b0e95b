package domain

import "time"

// BatchItem is one (article, file) pair submitted to the indexing pipeline.
type BatchItem struct {
	ArticleID int64
	FilePath  string
}

// Progress reports one completed item. Completed is strictly increasing
// within a batch.
type Progress struct {
	Completed int
	Total     int
	FilePath  string
	OK        bool
}

// BatchStats summarizes a finished (or cancelled) indexing batch.
type BatchStats struct {
	Succeeded int
	Failed    int
	Cancelled int // items abandoned after a cancellation request
	Duration  time.Duration
}

// ImportStats summarizes a folder import.
type ImportStats struct {
	Added   int
	Skipped int // duplicate paths
	Failed  int
}
