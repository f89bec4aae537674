package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insight_requests_total",
			Help: "Total number of insight operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	GenerationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insight_generation_total",
			Help: "Total number of generative calls by provider and status",
		},
		[]string{"provider", "status"},
	)

	FallbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insight_fallback_total",
			Help: "Total number of curated fallback results served",
		},
		[]string{"category", "reason"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "insight_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// RecordRequest counts one operation. A nil err is recorded as "ok".
func RecordRequest(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	RequestsTotal.WithLabelValues(operation, outcome).Inc()
}

func RecordGeneration(provider, status string) {
	GenerationTotal.WithLabelValues(provider, status).Inc()
}

func RecordFallback(category, reason string) {
	FallbackTotal.WithLabelValues(category, reason).Inc()
}

func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}
