package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SessionsFinished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promisync_sessions_finished_total",
			Help: "Sync sessions by final state.",
		},
		[]string{"state"},
	)
	JobsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promisync_jobs_processed_total",
			Help: "Sync jobs by outcome (succeeded, retried, dead_lettered).",
		},
		[]string{"outcome"},
	)
	JobDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "promisync_job_duration_seconds",
			Help:    "Wall time of one job execution.",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
	)
	LeasesExpired = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "promisync_leases_expired_total",
			Help: "Jobs returned to the queue after their worker lease expired.",
		},
	)
)

func init() {
	prometheus.MustRegister(SessionsFinished, JobsProcessed, JobDuration, LeasesExpired)
}

// Handler exposes the process metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
