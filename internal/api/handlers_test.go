package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"promisync/internal/domain"
	"promisync/internal/service"
	"promisync/internal/service/mocks"
)

type stubSyncer struct {
	suppliers []string
	session   *domain.SyncSession
	startErr  error
	stopErr   error
	connErr   error
	imported  int
	importErr error
	products  []domain.Product
	exportErr error
}

func (s *stubSyncer) Suppliers() []string { return s.suppliers }
func (s *stubSyncer) StartSync(context.Context, string) (*domain.SyncSession, error) {
	return s.session, s.startErr
}
func (s *stubSyncer) StopSync(context.Context, string) error       { return s.stopErr }
func (s *stubSyncer) TestConnection(context.Context, string) error { return s.connErr }
func (s *stubSyncer) ImportCategories(context.Context, string) (int, error) {
	return s.imported, s.importErr
}
func (s *stubSyncer) ExportProducts(context.Context, string) ([]domain.Product, error) {
	return s.products, s.exportErr
}

type stubVerifier struct {
	report *domain.VerificationReport
	err    error
}

func (s *stubVerifier) VerifySession(context.Context, string) (*domain.VerificationReport, error) {
	return s.report, s.err
}

type stubHealth struct {
	health *domain.PipelineHealth
	err    error
}

func (s *stubHealth) PipelineHealth(context.Context) (*domain.PipelineHealth, error) {
	return s.health, s.err
}

type HandlersTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	syncer   *stubSyncer
	verifier *stubVerifier
	health   *stubHealth
	sessions *mocks.MockSessionStore

	server *httptest.Server
}

func (s *HandlersTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.syncer = &stubSyncer{suppliers: []string{"A23"}}
	s.verifier = &stubVerifier{}
	s.health = &stubHealth{}
	s.sessions = mocks.NewMockSessionStore(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	handler := NewHandler(s.syncer, s.verifier, s.health, s.sessions, logger)
	s.server = httptest.NewServer(NewRouter(handler, logger))
}

func (s *HandlersTestSuite) TearDownTest() {
	s.server.Close()
	s.ctrl.Finish()
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) request(method, path string) (*http.Response, map[string]any) {
	req, err := http.NewRequest(method, s.server.URL+path, nil)
	s.Require().NoError(err)

	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	var body map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func (s *HandlersTestSuite) TestListSuppliers() {
	resp, body := s.request(http.MethodGet, "/api/v1/suppliers")
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(true, body["success"])
	s.Equal([]any{"A23"}, body["data"])
}

func (s *HandlersTestSuite) TestStartSync() {
	s.syncer.session = &domain.SyncSession{
		ID:           "sess-1",
		SupplierCode: "A23",
		State:        domain.SessionRunning,
		StartedAt:    time.Now(),
	}

	resp, body := s.request(http.MethodPost, "/api/v1/suppliers/A23/sync")
	s.Equal(http.StatusAccepted, resp.StatusCode)
	data := body["data"].(map[string]any)
	s.Equal("sess-1", data["id"])
	s.Equal("running", data["state"])
}

func (s *HandlersTestSuite) TestStartSync_UnknownSupplier() {
	s.syncer.startErr = service.ErrUnknownSupplier

	resp, body := s.request(http.MethodPost, "/api/v1/suppliers/Z99/sync")
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("not_found", body["error"])
}

func (s *HandlersTestSuite) TestStartSync_Conflict() {
	s.syncer.startErr = service.ErrSyncAlreadyRunning

	resp, body := s.request(http.MethodPost, "/api/v1/suppliers/A23/sync")
	s.Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("conflict", body["error"])
}

func (s *HandlersTestSuite) TestStopSync_NoActiveSession() {
	s.syncer.stopErr = service.ErrNoActiveSession

	resp, _ := s.request(http.MethodDelete, "/api/v1/suppliers/A23/sync")
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *HandlersTestSuite) TestTestConnection_Unreachable() {
	s.syncer.connErr = errors.New("dial tcp: connection refused")

	resp, body := s.request(http.MethodGet, "/api/v1/suppliers/A23/connection")
	s.Equal(http.StatusBadGateway, resp.StatusCode)
	s.Equal("connection_failed", body["error"])
}

func (s *HandlersTestSuite) TestImportCategories() {
	s.syncer.imported = 12

	resp, body := s.request(http.MethodPost, "/api/v1/suppliers/A23/categories/import")
	s.Equal(http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	s.Equal(float64(12), data["imported"])
}

func (s *HandlersTestSuite) TestSessionHistory_BadLimit() {
	resp, body := s.request(http.MethodGet, "/api/v1/suppliers/A23/sessions?limit=abc")
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("bad_request", body["error"])
}

func (s *HandlersTestSuite) TestSessionHistory() {
	s.sessions.EXPECT().HistoryForSupplier(gomock.Any(), "A23", 5).Return([]domain.SyncSession{
		{ID: "sess-1", SupplierCode: "A23", State: domain.SessionCompleted},
	}, nil)

	resp, body := s.request(http.MethodGet, "/api/v1/suppliers/A23/sessions?limit=5")
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Len(body["data"], 1)
}

func (s *HandlersTestSuite) TestGetSession_NotFound() {
	s.sessions.EXPECT().Get(gomock.Any(), "sess-404").Return(nil, sql.ErrNoRows)

	resp, body := s.request(http.MethodGet, "/api/v1/sessions/sess-404")
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("not_found", body["error"])
}

func (s *HandlersTestSuite) TestGetSession() {
	s.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(&domain.SyncSession{
		ID:           "sess-1",
		SupplierCode: "A23",
		State:        domain.SessionCompleted,
	}, nil)
	s.sessions.EXPECT().Errors(gomock.Any(), "sess-1").Return([]domain.SessionError{
		{SessionID: "sess-1", ExternalKey: "A100", Stage: "search_index", Message: "timeout"},
	}, nil)

	resp, body := s.request(http.MethodGet, "/api/v1/sessions/sess-1")
	s.Equal(http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	s.Equal("sess-1", data["id"])
	s.Len(data["errors"], 1)
}

func (s *HandlersTestSuite) TestVerifySession() {
	s.verifier.report = &domain.VerificationReport{
		SessionID:   "sess-1",
		KeysChecked: 3,
		Consistent:  true,
	}

	resp, body := s.request(http.MethodPost, "/api/v1/sessions/sess-1/verify")
	s.Equal(http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	s.Equal(true, data["consistent"])
}

func (s *HandlersTestSuite) TestPipelineHealth_Degraded() {
	s.health.health = &domain.PipelineHealth{
		Status: service.HealthDegraded,
		Suppliers: []domain.SupplierHealth{
			{SupplierCode: "A23", Healthy: false, Reason: "last sync failed"},
		},
		CheckedAt: time.Now(),
	}

	resp, body := s.request(http.MethodGet, "/api/v1/pipeline/health")
	s.Equal(http.StatusServiceUnavailable, resp.StatusCode)
	data := body["data"].(map[string]any)
	s.Equal("degraded", data["status"])
}

func (s *HandlersTestSuite) TestPipelineHealth_Healthy() {
	s.health.health = &domain.PipelineHealth{Status: service.HealthHealthy, CheckedAt: time.Now()}

	resp, _ := s.request(http.MethodGet, "/api/v1/pipeline/health")
	s.Equal(http.StatusOK, resp.StatusCode)
}
