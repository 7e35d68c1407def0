package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"promisync/internal/domain"
	"promisync/internal/httpclient"
	"promisync/internal/service/mocks"
)

type ProcessorTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source    *mocks.MockSupplierSource
	products  *mocks.MockProductStore
	tx        *mocks.MockTransactionManager
	sessions  *mocks.MockSessionStore
	search    *mocks.MockDocumentSink
	rag       *mocks.MockDocumentSink
	publisher *mocks.MockPublisher

	processor *Processor
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockSupplierSource(s.ctrl)
	s.products = mocks.NewMockProductStore(s.ctrl)
	s.tx = mocks.NewMockTransactionManager(s.ctrl)
	s.sessions = mocks.NewMockSessionStore(s.ctrl)
	s.search = mocks.NewMockDocumentSink(s.ctrl)
	s.rag = mocks.NewMockDocumentSink(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.search.EXPECT().Name().Return("search_index").AnyTimes()
	s.rag.EXPECT().Name().Return("rag_store").AnyTimes()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	fanout := NewFanout(s.products, s.tx, s.sessions, s.search, s.rag, s.publisher, logger)

	s.processor = NewProcessor(
		map[string]SupplierSource{"A23": s.source},
		fanout,
		s.sessions,
		logger,
	)
}

func (s *ProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestProcessorTestSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

func (s *ProcessorTestSuite) upsertJob(classification string) *domain.SyncJob {
	return &domain.SyncJob{
		ID:             1,
		SessionID:      "sess-1",
		SupplierCode:   "A23",
		ExternalKey:    "A100",
		SourceURL:      "https://supplier.example/A23/A100.json",
		Action:         domain.JobActionUpsert,
		Classification: classification,
		ContentHash:    "hash-1",
	}
}

func (s *ProcessorTestSuite) expectApply(ctx context.Context, product *domain.Product, action string) {
	s.tx.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.products.EXPECT().Upsert(ctx, product).Return(int64(9), nil)
	s.products.EXPECT().ReplaceVariants(ctx, int64(9), product.Variants).Return(nil)
	s.search.EXPECT().UpsertDocument(ctx, product).Return(nil)
	s.rag.EXPECT().UpsertDocument(ctx, product).Return(nil)
	s.publisher.EXPECT().PublishProduct(ctx, product, action).Return(nil)
}

func (s *ProcessorTestSuite) TestProcess_NewProductCountsAsAdded() {
	ctx := context.Background()
	job := s.upsertJob(domain.JobClassNew)
	product := &domain.Product{SupplierCode: "A23", ANumber: "A100"}

	s.source.EXPECT().FetchProduct(ctx, job.SourceURL, job.ContentHash).Return(product, nil)
	s.expectApply(ctx, product, ActionCreate)
	s.sessions.EXPECT().AddTotals(ctx, "sess-1", domain.SessionTotals{Added: 1}).Return(nil)

	s.NoError(s.processor.Process(ctx, job))
}

func (s *ProcessorTestSuite) TestProcess_ChangedProductCountsAsUpdated() {
	ctx := context.Background()
	job := s.upsertJob(domain.JobClassChanged)
	product := &domain.Product{SupplierCode: "A23", ANumber: "A100"}

	s.source.EXPECT().FetchProduct(ctx, job.SourceURL, job.ContentHash).Return(product, nil)
	s.expectApply(ctx, product, ActionUpdate)
	s.sessions.EXPECT().AddTotals(ctx, "sess-1", domain.SessionTotals{Updated: 1}).Return(nil)

	s.NoError(s.processor.Process(ctx, job))
}

func (s *ProcessorTestSuite) TestProcess_Removal() {
	ctx := context.Background()
	job := &domain.SyncJob{
		ID:           2,
		SessionID:    "sess-1",
		SupplierCode: "A23",
		ExternalKey:  "A200",
		Action:       domain.JobActionRemove,
	}

	s.products.EXPECT().Delete(ctx, "A23", "A200").Return(nil)
	s.search.EXPECT().DeleteDocument(ctx, "A23", "A200").Return(nil)
	s.rag.EXPECT().DeleteDocument(ctx, "A23", "A200").Return(nil)
	s.publisher.EXPECT().PublishRemoval(ctx, "A23", "A200").Return(nil)
	s.sessions.EXPECT().AddTotals(ctx, "sess-1", domain.SessionTotals{Removed: 1}).Return(nil)

	s.NoError(s.processor.Process(ctx, job))
}

func (s *ProcessorTestSuite) TestProcess_ClientErrorIsPermanent() {
	ctx := context.Background()
	job := s.upsertJob(domain.JobClassChanged)

	fetchErr := &httpclient.StatusError{URL: job.SourceURL, StatusCode: 404}
	s.source.EXPECT().FetchProduct(ctx, job.SourceURL, job.ContentHash).Return(nil, fetchErr)

	err := s.processor.Process(ctx, job)
	s.Error(err)
	s.True(IsPermanent(err))
}

func (s *ProcessorTestSuite) TestProcess_ExhaustedRetriesStayRetryable() {
	ctx := context.Background()
	job := s.upsertJob(domain.JobClassChanged)

	fetchErr := &httpclient.ExhaustedError{URL: job.SourceURL, Attempts: 5, Err: errors.New("connection reset")}
	s.source.EXPECT().FetchProduct(ctx, job.SourceURL, job.ContentHash).Return(nil, fetchErr)

	err := s.processor.Process(ctx, job)
	s.Error(err)
	s.False(IsPermanent(err))
}

func (s *ProcessorTestSuite) TestProcess_DecodeFailureIsPermanent() {
	ctx := context.Background()
	job := s.upsertJob(domain.JobClassChanged)

	s.source.EXPECT().FetchProduct(ctx, job.SourceURL, job.ContentHash).
		Return(nil, errors.New("decode product document: unexpected end of JSON input"))

	err := s.processor.Process(ctx, job)
	s.Error(err)
	s.True(IsPermanent(err))
}

func (s *ProcessorTestSuite) TestProcess_UnknownSupplierIsPermanent() {
	ctx := context.Background()
	job := s.upsertJob(domain.JobClassChanged)
	job.SupplierCode = "Z99"

	err := s.processor.Process(ctx, job)
	s.Error(err)
	s.True(IsPermanent(err))
	s.ErrorIs(err, ErrUnknownSupplier)
}

func (s *ProcessorTestSuite) TestProcess_UnknownActionIsPermanent() {
	ctx := context.Background()
	job := s.upsertJob(domain.JobClassChanged)
	job.Action = "reindex"

	err := s.processor.Process(ctx, job)
	s.Error(err)
	s.True(IsPermanent(err))
}
