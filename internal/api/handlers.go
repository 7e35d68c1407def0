package api

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"promisync/internal/domain"
	"promisync/internal/service"
)

// Syncer is the orchestrator surface the handlers drive.
type Syncer interface {
	Suppliers() []string
	StartSync(ctx context.Context, supplierCode string) (*domain.SyncSession, error)
	StopSync(ctx context.Context, supplierCode string) error
	TestConnection(ctx context.Context, supplierCode string) error
	ImportCategories(ctx context.Context, supplierCode string) (int, error)
	ExportProducts(ctx context.Context, supplierCode string) ([]domain.Product, error)
}

type Verifier interface {
	VerifySession(ctx context.Context, sessionID string) (*domain.VerificationReport, error)
}

type HealthChecker interface {
	PipelineHealth(ctx context.Context) (*domain.PipelineHealth, error)
}

type Handler struct {
	syncer   Syncer
	verifier Verifier
	health   HealthChecker
	sessions service.SessionStore
	logger   *slog.Logger
}

func NewHandler(
	syncer Syncer,
	verifier Verifier,
	health HealthChecker,
	sessions service.SessionStore,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		syncer:   syncer,
		verifier: verifier,
		health:   health,
		sessions: sessions,
		logger:   logger,
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

type response struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	kind := "internal_error"

	switch {
	case errors.Is(err, service.ErrUnknownSupplier),
		errors.Is(err, service.ErrNoActiveSession),
		errors.Is(err, service.ErrSessionNotFound):
		status = http.StatusNotFound
		kind = "not_found"
	case errors.Is(err, service.ErrSyncAlreadyRunning):
		status = http.StatusConflict
		kind = "conflict"
	default:
		h.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}

	render.Status(r, status)
	render.JSON(w, r, errorResponse{
		Error:   kind,
		Code:    status,
		Message: err.Error(),
	})
}

func (h *Handler) renderData(w http.ResponseWriter, r *http.Request, status int, data any) {
	render.Status(r, status)
	render.JSON(w, r, response{Success: true, Data: data})
}

func (h *Handler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	h.renderData(w, r, http.StatusOK, h.syncer.Suppliers())
}

func (h *Handler) StartSync(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	session, err := h.syncer.StartSync(r.Context(), code)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.renderData(w, r, http.StatusAccepted, session)
}

func (h *Handler) StopSync(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if err := h.syncer.StopSync(r.Context(), code); err != nil {
		h.renderError(w, r, err)
		return
	}
	h.renderData(w, r, http.StatusAccepted, map[string]string{"supplier_code": code, "status": "stopping"})
}

func (h *Handler) TestConnection(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if err := h.syncer.TestConnection(r.Context(), code); err != nil {
		if errors.Is(err, service.ErrUnknownSupplier) {
			h.renderError(w, r, err)
			return
		}
		render.Status(r, http.StatusBadGateway)
		render.JSON(w, r, errorResponse{
			Error:   "connection_failed",
			Code:    http.StatusBadGateway,
			Message: err.Error(),
		})
		return
	}
	h.renderData(w, r, http.StatusOK, map[string]string{"supplier_code": code, "status": "reachable"})
}

func (h *Handler) ImportCategories(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	imported, err := h.syncer.ImportCategories(r.Context(), code)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.renderData(w, r, http.StatusOK, map[string]int{"imported": imported})
}

func (h *Handler) ExportProducts(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	products, err := h.syncer.ExportProducts(r.Context(), code)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.renderData(w, r, http.StatusOK, products)
}

func (h *Handler) SessionHistory(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, errorResponse{
				Error:   "bad_request",
				Code:    http.StatusBadRequest,
				Message: "limit must be a non-negative integer",
			})
			return
		}
		limit = parsed
	}

	sessions, err := h.sessions.HistoryForSupplier(r.Context(), code, limit)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.renderData(w, r, http.StatusOK, sessions)
}

func (h *Handler) ActiveSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessions.ListActive(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.renderData(w, r, http.StatusOK, sessions)
}

type sessionDetail struct {
	domain.SyncSession
	Errors []domain.SessionError `json:"errors"`
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	session, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = service.ErrSessionNotFound
		}
		h.renderError(w, r, err)
		return
	}

	sessionErrors, err := h.sessions.Errors(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.renderData(w, r, http.StatusOK, sessionDetail{
		SyncSession: *session,
		Errors:      sessionErrors,
	})
}

func (h *Handler) VerifySession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	report, err := h.verifier.VerifySession(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.renderData(w, r, http.StatusOK, report)
}

func (h *Handler) PipelineHealth(w http.ResponseWriter, r *http.Request) {
	health, err := h.health.PipelineHealth(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	status := http.StatusOK
	if health.Status != service.HealthHealthy {
		status = http.StatusServiceUnavailable
	}
	h.renderData(w, r, status, health)
}
