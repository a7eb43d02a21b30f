package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestCounter counts all HTTP requests with labels
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// RequestDurationHistogram records request duration in seconds
	RequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// UploadCounter counts dataset uploads by outcome
	UploadCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_uploads_total",
			Help: "Total number of dataset upload attempts",
		},
		[]string{"outcome"}, // "ok", "rejected", "failed"
	)

	// AuthErrorCounter counts authentication failures by reason
	AuthErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_errors_total",
			Help: "Total number of authentication errors",
		},
		[]string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestCounter,
		RequestDurationHistogram,
		UploadCounter,
		AuthErrorCounter,
	)
}

// Handler returns the HTTP handler exposing the Prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
