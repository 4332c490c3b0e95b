package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"paperbase/internal/domain"
	"paperbase/internal/pdf"
	"paperbase/internal/service/mocks"
)

type IndexerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	opener   *mocks.MockDocumentOpener
	pages    *mocks.MockPageIndexStore
	notifier *mocks.MockNotifier

	indexer *Indexer
	logger  *slog.Logger
}

func (s *IndexerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.opener = mocks.NewMockDocumentOpener(s.ctrl)
	s.pages = mocks.NewMockPageIndexStore(s.ctrl)
	s.notifier = mocks.NewMockNotifier(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.indexer = NewIndexer(s.opener, s.pages, s.notifier, s.logger)
}

func (s *IndexerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestIndexerTestSuite(t *testing.T) {
	suite.Run(t, new(IndexerTestSuite))
}

// expectIndexed wires the happy path for one item: open, reset the flag,
// extract every page, replace the entry set, notify.
func (s *IndexerTestSuite) expectIndexed(articleID int64, path string, texts []string) {
	doc := mocks.NewMockDocument(s.ctrl)
	doc.EXPECT().PageCount().Return(len(texts)).AnyTimes()
	for i, text := range texts {
		doc.EXPECT().ExtractText(i + 1).Return(text, nil)
	}
	doc.EXPECT().Close().Return(nil)

	s.opener.EXPECT().Open(path).Return(doc, nil)
	s.pages.EXPECT().ResetIndexed(gomock.Any(), articleID).Return(nil)
	s.pages.EXPECT().ReplacePages(gomock.Any(), articleID, texts).Return(nil)
	s.notifier.EXPECT().ArticleIndexed(gomock.Any(), articleID, path, len(texts)).Return(nil)
}

func (s *IndexerTestSuite) TestBatch_AllSucceed() {
	items := []domain.BatchItem{
		{ArticleID: 1, FilePath: "a.pdf"},
		{ArticleID: 2, FilePath: "b.pdf"},
	}

	s.expectIndexed(1, "a.pdf", []string{"page one", ""})
	s.expectIndexed(2, "b.pdf", []string{"other text"})
	s.notifier.EXPECT().BatchCompleted(gomock.Any(), gomock.Any()).Return(nil)

	batch, err := s.indexer.SubmitBatch(context.Background(), items)
	s.Require().NoError(err)

	var events []domain.Progress
	for p := range batch.Progress() {
		events = append(events, p)
	}

	s.Require().Len(events, 2)
	s.Equal(domain.Progress{Completed: 1, Total: 2, FilePath: "a.pdf", OK: true}, events[0])
	s.Equal(domain.Progress{Completed: 2, Total: 2, FilePath: "b.pdf", OK: true}, events[1])

	stats := batch.Wait()
	s.Equal(2, stats.Succeeded)
	s.Equal(0, stats.Failed)
	s.Equal(0, stats.Cancelled)
}

func (s *IndexerTestSuite) TestBatch_FailedItemDoesNotAbortSiblings() {
	items := []domain.BatchItem{
		{ArticleID: 1, FilePath: "a.pdf"},
		{ArticleID: 2, FilePath: "broken.pdf"},
		{ArticleID: 3, FilePath: "c.pdf"},
	}

	s.expectIndexed(1, "a.pdf", []string{"alpha"})
	s.opener.EXPECT().Open("broken.pdf").Return(nil, errors.New("malformed xref"))
	s.expectIndexed(3, "c.pdf", []string{"gamma"})
	s.notifier.EXPECT().BatchCompleted(gomock.Any(), gomock.Any()).Return(nil)

	batch, err := s.indexer.SubmitBatch(context.Background(), items)
	s.Require().NoError(err)

	var events []domain.Progress
	for p := range batch.Progress() {
		events = append(events, p)
	}

	s.Require().Len(events, 3)
	for i, p := range events {
		s.Equal(i+1, p.Completed, "progress must be strictly increasing")
		s.Equal(3, p.Total)
	}
	s.True(events[0].OK)
	s.False(events[1].OK)
	s.True(events[2].OK)

	stats := batch.Wait()
	s.Equal(2, stats.Succeeded)
	s.Equal(1, stats.Failed)
}

func (s *IndexerTestSuite) TestBatch_ExtractFailureLeavesArticleUnindexed() {
	items := []domain.BatchItem{{ArticleID: 5, FilePath: "torn.pdf"}}

	doc := mocks.NewMockDocument(s.ctrl)
	doc.EXPECT().PageCount().Return(2).AnyTimes()
	doc.EXPECT().ExtractText(1).Return("fine", nil)
	doc.EXPECT().ExtractText(2).Return("", errors.New("bad stream"))
	doc.EXPECT().Close().Return(nil)

	s.opener.EXPECT().Open("torn.pdf").Return(doc, nil)
	s.pages.EXPECT().ResetIndexed(gomock.Any(), int64(5)).Return(nil)
	// ReplacePages must never run, so the commit marker stays false.
	s.notifier.EXPECT().BatchCompleted(gomock.Any(), gomock.Any()).Return(nil)

	batch, err := s.indexer.SubmitBatch(context.Background(), items)
	s.Require().NoError(err)

	stats := batch.Wait()
	s.Equal(0, stats.Succeeded)
	s.Equal(1, stats.Failed)
}

func (s *IndexerTestSuite) TestBatch_CancelStopsAtItemBoundary() {
	items := []domain.BatchItem{
		{ArticleID: 1, FilePath: "a.pdf"},
		{ArticleID: 2, FilePath: "b.pdf"},
		{ArticleID: 3, FilePath: "c.pdf"},
	}

	opened := make(chan struct{})
	unblock := make(chan struct{})

	doc := mocks.NewMockDocument(s.ctrl)
	doc.EXPECT().PageCount().Return(1).AnyTimes()
	doc.EXPECT().ExtractText(1).Return("alpha", nil)
	doc.EXPECT().Close().Return(nil)

	// Item 1 is in flight when the cancel request lands; it must still
	// complete and commit. Items 2 and 3 have no expectations: touching
	// them fails the test.
	s.opener.EXPECT().Open("a.pdf").DoAndReturn(func(string) (pdf.Document, error) {
		close(opened)
		<-unblock
		return doc, nil
	})
	s.pages.EXPECT().ResetIndexed(gomock.Any(), int64(1)).Return(nil)
	s.pages.EXPECT().ReplacePages(gomock.Any(), int64(1), []string{"alpha"}).Return(nil)
	s.notifier.EXPECT().ArticleIndexed(gomock.Any(), int64(1), "a.pdf", 1).Return(nil)
	s.notifier.EXPECT().BatchCompleted(gomock.Any(), gomock.Any()).Return(nil)

	batch, err := s.indexer.SubmitBatch(context.Background(), items)
	s.Require().NoError(err)

	<-opened
	batch.Cancel()
	close(unblock)

	stats := batch.Wait()
	s.Equal(1, stats.Succeeded)
	s.Equal(0, stats.Failed)
	s.Equal(2, stats.Cancelled)

	var events []domain.Progress
	for p := range batch.Progress() {
		events = append(events, p)
	}
	s.Require().Len(events, 1)
	s.True(events[0].OK)
}

func (s *IndexerTestSuite) TestSubmitBatch_RejectsConcurrentBatch() {
	opened := make(chan struct{})
	unblock := make(chan struct{})

	doc := mocks.NewMockDocument(s.ctrl)
	doc.EXPECT().PageCount().Return(1).AnyTimes()
	doc.EXPECT().ExtractText(1).Return("x", nil)
	doc.EXPECT().Close().Return(nil)

	s.opener.EXPECT().Open("a.pdf").DoAndReturn(func(string) (pdf.Document, error) {
		close(opened)
		<-unblock
		return doc, nil
	})
	s.pages.EXPECT().ResetIndexed(gomock.Any(), int64(1)).Return(nil)
	s.pages.EXPECT().ReplacePages(gomock.Any(), int64(1), []string{"x"}).Return(nil)
	s.notifier.EXPECT().ArticleIndexed(gomock.Any(), int64(1), "a.pdf", 1).Return(nil)
	s.notifier.EXPECT().BatchCompleted(gomock.Any(), gomock.Any()).Return(nil)

	first, err := s.indexer.SubmitBatch(context.Background(), []domain.BatchItem{{ArticleID: 1, FilePath: "a.pdf"}})
	s.Require().NoError(err)

	<-opened
	_, err = s.indexer.SubmitBatch(context.Background(), []domain.BatchItem{{ArticleID: 2, FilePath: "b.pdf"}})
	s.ErrorIs(err, ErrBatchActive)

	close(unblock)
	first.Wait()

	// Once the first batch terminates, a new one is accepted.
	s.expectIndexed(2, "b.pdf", []string{"y"})
	s.notifier.EXPECT().BatchCompleted(gomock.Any(), gomock.Any()).Return(nil)

	second, err := s.indexer.SubmitBatch(context.Background(), []domain.BatchItem{{ArticleID: 2, FilePath: "b.pdf"}})
	s.Require().NoError(err)
	second.Wait()
}

func (s *IndexerTestSuite) TestSubmitBatch_Empty() {
	_, err := s.indexer.SubmitBatch(context.Background(), nil)
	s.ErrorIs(err, ErrEmptyBatch)
}

func (s *IndexerTestSuite) TestBatch_NotifierNil() {
	indexer := NewIndexer(s.opener, s.pages, nil, s.logger)

	doc := mocks.NewMockDocument(s.ctrl)
	doc.EXPECT().PageCount().Return(1).AnyTimes()
	doc.EXPECT().ExtractText(1).Return("quiet", nil)
	doc.EXPECT().Close().Return(nil)

	s.opener.EXPECT().Open("a.pdf").Return(doc, nil)
	s.pages.EXPECT().ResetIndexed(gomock.Any(), int64(1)).Return(nil)
	s.pages.EXPECT().ReplacePages(gomock.Any(), int64(1), []string{"quiet"}).Return(nil)

	batch, err := indexer.SubmitBatch(context.Background(), []domain.BatchItem{{ArticleID: 1, FilePath: "a.pdf"}})
	s.Require().NoError(err)

	stats := batch.Wait()
	s.Equal(1, stats.Succeeded)
}
