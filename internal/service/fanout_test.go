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
	"promisync/internal/service/mocks"
)

type FanoutTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	products  *mocks.MockProductStore
	tx        *mocks.MockTransactionManager
	sessions  *mocks.MockSessionStore
	search    *mocks.MockDocumentSink
	rag       *mocks.MockDocumentSink
	publisher *mocks.MockPublisher

	fanout *Fanout
	logger *slog.Logger
}

func (s *FanoutTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.products = mocks.NewMockProductStore(s.ctrl)
	s.tx = mocks.NewMockTransactionManager(s.ctrl)
	s.sessions = mocks.NewMockSessionStore(s.ctrl)
	s.search = mocks.NewMockDocumentSink(s.ctrl)
	s.rag = mocks.NewMockDocumentSink(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.search.EXPECT().Name().Return("search_index").AnyTimes()
	s.rag.EXPECT().Name().Return("rag_store").AnyTimes()

	s.fanout = NewFanout(s.products, s.tx, s.sessions, s.search, s.rag, s.publisher, s.logger)
}

func (s *FanoutTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestFanoutTestSuite(t *testing.T) {
	suite.Run(t, new(FanoutTestSuite))
}

func (s *FanoutTestSuite) expectTransaction(ctx context.Context) {
	s.tx.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *FanoutTestSuite) product() *domain.Product {
	return &domain.Product{
		SupplierCode:  "A23",
		ANumber:       "A100",
		SKU:           "A100",
		Name:          domain.LocalizedText{domain.LangEN: "Pen"},
		PromidataHash: "hash-1",
		Variants: []domain.Variant{
			{SKU: "A100-RED", Color: "Red", PrimaryForColor: true},
		},
	}
}

func (s *FanoutTestSuite) TestApplyProduct_New() {
	ctx := context.Background()
	product := s.product()

	s.expectTransaction(ctx)
	s.products.EXPECT().Upsert(ctx, product).Return(int64(7), nil)
	s.products.EXPECT().ReplaceVariants(ctx, int64(7), product.Variants).Return(nil)

	s.search.EXPECT().UpsertDocument(ctx, product).Return(nil)
	s.rag.EXPECT().UpsertDocument(ctx, product).Return(nil)

	s.publisher.EXPECT().PublishProduct(ctx, product, ActionCreate).Return(nil)

	err := s.fanout.ApplyProduct(ctx, "sess-1", product, true)
	s.NoError(err)
}

func (s *FanoutTestSuite) TestApplyProduct_Update() {
	ctx := context.Background()
	product := s.product()

	s.expectTransaction(ctx)
	s.products.EXPECT().Upsert(ctx, product).Return(int64(7), nil)
	s.products.EXPECT().ReplaceVariants(ctx, int64(7), product.Variants).Return(nil)

	s.search.EXPECT().UpsertDocument(ctx, product).Return(nil)
	s.rag.EXPECT().UpsertDocument(ctx, product).Return(nil)

	s.publisher.EXPECT().PublishProduct(ctx, product, ActionUpdate).Return(nil)

	err := s.fanout.ApplyProduct(ctx, "sess-1", product, false)
	s.NoError(err)
}

func (s *FanoutTestSuite) TestApplyProduct_StoreFailureAborts() {
	ctx := context.Background()
	product := s.product()

	s.expectTransaction(ctx)
	s.products.EXPECT().Upsert(ctx, product).Return(int64(0), errors.New("db down"))

	// No sink or publisher calls.
	err := s.fanout.ApplyProduct(ctx, "sess-1", product, true)
	s.Error(err)
	s.Contains(err.Error(), "system-of-record")
}

func (s *FanoutTestSuite) TestApplyProduct_SinkFailureIsRecordedNotFatal() {
	ctx := context.Background()
	product := s.product()

	s.expectTransaction(ctx)
	s.products.EXPECT().Upsert(ctx, product).Return(int64(7), nil)
	s.products.EXPECT().ReplaceVariants(ctx, int64(7), product.Variants).Return(nil)

	s.search.EXPECT().UpsertDocument(ctx, product).Return(errors.New("index unavailable"))
	s.rag.EXPECT().UpsertDocument(ctx, product).Return(nil)

	s.sessions.EXPECT().AppendError(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e *domain.SessionError) error {
			s.Equal("sess-1", e.SessionID)
			s.Equal("A100", e.ExternalKey)
			s.Equal("search_index", e.Stage)
			return nil
		},
	)

	s.publisher.EXPECT().PublishProduct(ctx, product, ActionCreate).Return(nil)

	err := s.fanout.ApplyProduct(ctx, "sess-1", product, true)
	s.NoError(err)
}

func (s *FanoutTestSuite) TestApplyProduct_PublisherFailureIsIgnored() {
	ctx := context.Background()
	product := s.product()

	s.expectTransaction(ctx)
	s.products.EXPECT().Upsert(ctx, product).Return(int64(7), nil)
	s.products.EXPECT().ReplaceVariants(ctx, int64(7), product.Variants).Return(nil)

	s.search.EXPECT().UpsertDocument(ctx, product).Return(nil)
	s.rag.EXPECT().UpsertDocument(ctx, product).Return(nil)

	s.publisher.EXPECT().PublishProduct(ctx, product, ActionCreate).Return(errors.New("broker gone"))

	err := s.fanout.ApplyProduct(ctx, "sess-1", product, true)
	s.NoError(err)
}

func (s *FanoutTestSuite) TestRemoveProduct() {
	ctx := context.Background()

	s.products.EXPECT().Delete(ctx, "A23", "A100").Return(nil)
	s.search.EXPECT().DeleteDocument(ctx, "A23", "A100").Return(nil)
	s.rag.EXPECT().DeleteDocument(ctx, "A23", "A100").Return(nil)
	s.publisher.EXPECT().PublishRemoval(ctx, "A23", "A100").Return(nil)

	err := s.fanout.RemoveProduct(ctx, "sess-1", "A23", "A100")
	s.NoError(err)
}

func (s *FanoutTestSuite) TestRemoveProduct_StoreFailureAborts() {
	ctx := context.Background()

	s.products.EXPECT().Delete(ctx, "A23", "A100").Return(errors.New("db down"))

	err := s.fanout.RemoveProduct(ctx, "sess-1", "A23", "A100")
	s.Error(err)
}

func (s *FanoutTestSuite) TestRemoveProduct_SinkFailureIsRecordedNotFatal() {
	ctx := context.Background()

	s.products.EXPECT().Delete(ctx, "A23", "A100").Return(nil)
	s.search.EXPECT().DeleteDocument(ctx, "A23", "A100").Return(nil)
	s.rag.EXPECT().DeleteDocument(ctx, "A23", "A100").Return(errors.New("rag store down"))

	s.sessions.EXPECT().AppendError(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e *domain.SessionError) error {
			s.Equal("rag_store", e.Stage)
			return nil
		},
	)

	s.publisher.EXPECT().PublishRemoval(ctx, "A23", "A100").Return(nil)

	err := s.fanout.RemoveProduct(ctx, "sess-1", "A23", "A100")
	s.NoError(err)
}
