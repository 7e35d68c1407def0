// Package api exposes the sync control surface over HTTP: starting and
// stopping supplier syncs, session history, verification and health.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"promisync/internal/metrics"
)

func NewRouter(h *Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/suppliers", h.ListSuppliers)

		r.Route("/suppliers/{code}", func(r chi.Router) {
			r.Post("/sync", h.StartSync)
			r.Delete("/sync", h.StopSync)
			r.Get("/sessions", h.SessionHistory)
			r.Get("/connection", h.TestConnection)
			r.Post("/categories/import", h.ImportCategories)
			r.Get("/products", h.ExportProducts)
		})

		r.Get("/sessions/active", h.ActiveSessions)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", h.GetSession)
			r.Post("/verify", h.VerifySession)
		})

		r.Get("/pipeline/health", h.PipelineHealth)
	})

	return r
}

// requestLogger logs one line per request at debug, matching the rest
// of the service's slog output.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
			)
		})
	}
}
