package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paperbase/internal/domain"
)

func ptr(v int64) *int64 { return &v }

func fixture() []domain.Article {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return []domain.Article{
		{ID: 1, Title: "Bandits", Keywords: "exploration", Pages: 12, IsRead: true, GroupID: ptr(1), DateAdded: base},
		{ID: 2, Title: "attention survey", Keywords: "transformers", Pages: 45, GroupID: ptr(1), DateAdded: base.Add(time.Hour)},
		{ID: 3, Title: "Calibration", Keywords: "Attention heads", Pages: 7, IsRead: true, DateAdded: base.Add(2 * time.Hour)},
		{ID: 4, Title: "Zeros", Pages: 30, DateAdded: base.Add(3 * time.Hour)},
	}
}

func ids(articles []domain.Article) []int64 {
	out := make([]int64, len(articles))
	for i, a := range articles {
		out[i] = a.ID
	}
	return out
}

func TestApply_GroupFilter(t *testing.T) {
	got := Apply(fixture(), Criteria{GroupID: ptr(1), Sort: SortTitle})
	assert.Equal(t, []int64{2, 1}, ids(got))
}

func TestApply_SearchMatchesTitleOrKeywords(t *testing.T) {
	got := Apply(fixture(), Criteria{Search: "ATTENTION", Sort: SortTitle})
	// #2 matches on title, #3 on keywords; #1 and #4 match neither.
	assert.Equal(t, []int64{2, 3}, ids(got))
}

func TestApply_ReadFilters(t *testing.T) {
	read := Apply(fixture(), Criteria{Read: ReadOnly, Sort: SortTitle})
	assert.Equal(t, []int64{1, 3}, ids(read))

	unread := Apply(fixture(), Criteria{Read: UnreadOnly, Sort: SortTitle})
	assert.Equal(t, []int64{2, 4}, ids(unread))

	all := Apply(fixture(), Criteria{Read: ReadAll, Sort: SortTitle})
	assert.Len(t, all, 4)
}

func TestApply_SortTitleCaseInsensitive(t *testing.T) {
	got := Apply(fixture(), Criteria{Sort: SortTitle})
	assert.Equal(t, []int64{2, 1, 3, 4}, ids(got))
}

func TestApply_SortPagesReverseIsExactMirror(t *testing.T) {
	most := Apply(fixture(), Criteria{Sort: SortPages})
	assert.Equal(t, []int64{2, 4, 1, 3}, ids(most))

	fewest := Apply(fixture(), Criteria{Sort: SortPages, Reverse: true})

	require.Len(t, fewest, len(most))
	for i := range most {
		assert.Equal(t, most[i].ID, fewest[len(fewest)-1-i].ID)
	}
}

func TestApply_SortDateAddedNewestFirst(t *testing.T) {
	got := Apply(fixture(), Criteria{Sort: SortDateAdded})
	assert.Equal(t, []int64{4, 3, 2, 1}, ids(got))

	reversed := Apply(fixture(), Criteria{Sort: SortDateAdded, Reverse: true})
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(reversed))
}

func TestApply_SortReadBeforeUnread(t *testing.T) {
	got := Apply(fixture(), Criteria{Sort: SortRead})
	require.Len(t, got, 4)
	assert.True(t, got[0].IsRead)
	assert.True(t, got[1].IsRead)
	assert.False(t, got[2].IsRead)
	assert.False(t, got[3].IsRead)
}

func TestApply_SortIsStable(t *testing.T) {
	// Equal read ranks keep their input order.
	got := Apply(fixture(), Criteria{Sort: SortRead})
	assert.Equal(t, []int64{1, 3, 2, 4}, ids(got))
}

func TestApply_EmptyResultIsNotAnError(t *testing.T) {
	got := Apply(fixture(), Criteria{Search: "no such thing"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApply_InputUntouched(t *testing.T) {
	in := fixture()
	Apply(in, Criteria{Sort: SortTitle, Reverse: true})
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(in))
}
