// Package query is the pure filter/sort pipeline over a catalog snapshot.
// It never touches the store; callers pass the articles they already hold.
package query

import (
	"sort"
	"strings"

	"paperbase/internal/domain"
)

// ReadFilter selects by read state. The states are mutually exclusive.
type ReadFilter int

const (
	ReadAll ReadFilter = iota
	ReadOnly
	UnreadOnly
)

// SortKey selects the ordering. Each key has a natural, most-relevant-first
// order: newest first for date added, most pages first, read before unread,
// and A to Z for titles.
type SortKey int

const (
	SortDateAdded SortKey = iota
	SortTitle
	SortPages
	SortRead
)

// Criteria describes one query. Reverse inverts the active key's natural
// order and applies uniformly to every key.
type Criteria struct {
	GroupID *int64
	Search  string
	Read    ReadFilter
	Sort    SortKey
	Reverse bool
}

// Apply filters and sorts a snapshot: group restriction, then text search
// (case-insensitive substring over title OR keywords), then read state, then
// a stable sort. The input slice is left untouched.
func Apply(articles []domain.Article, c Criteria) []domain.Article {
	needle := strings.ToLower(c.Search)

	out := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if c.GroupID != nil && (a.GroupID == nil || *a.GroupID != *c.GroupID) {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(a.Title), needle) &&
			!strings.Contains(strings.ToLower(a.Keywords), needle) {
			continue
		}
		switch c.Read {
		case ReadOnly:
			if !a.IsRead {
				continue
			}
		case UnreadOnly:
			if a.IsRead {
				continue
			}
		}
		out = append(out, a)
	}

	sort.SliceStable(out, func(i, j int) bool {
		cmp := compare(&out[i], &out[j], c.Sort)
		if c.Reverse {
			return cmp > 0
		}
		return cmp < 0
	})

	return out
}

// compare returns a negative value when a precedes b in the key's natural
// order, zero when they tie.
func compare(a, b *domain.Article, key SortKey) int {
	switch key {
	case SortTitle:
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	case SortPages:
		return b.Pages - a.Pages
	case SortRead:
		return readRank(a) - readRank(b)
	default:
		return b.DateAdded.Compare(a.DateAdded)
	}
}

func readRank(a *domain.Article) int {
	if a.IsRead {
		return 0
	}
	return 1
}
