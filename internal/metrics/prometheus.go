package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the data API and the ETL job
var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ventus_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ventus_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	rateLimitedRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ventus_rate_limited_requests_total",
			Help: "Total number of rate limited requests",
		},
		[]string{"path"},
	)

	authRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ventus_auth_requests_total",
			Help: "Total number of API key authentication attempts",
		},
		[]string{"status", "source"},
	)

	// ETL metrics
	etlRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ventus_etl_runs_total",
			Help: "Total number of ETL runs",
		},
		[]string{"status"},
	)

	etlRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ventus_etl_run_duration_seconds",
			Help:    "ETL run duration in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 300, 600, 1800}, // 1s to 30m
		},
		[]string{"status"},
	)

	etlPagesFetchedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ventus_etl_pages_fetched_total",
			Help: "Total number of source API pages fetched",
		},
	)

	etlRecordsExtractedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ventus_etl_records_extracted_total",
			Help: "Total number of records pulled from the source API",
		},
	)

	etlWindowsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ventus_etl_windows_total",
			Help: "Total number of aggregate windows produced",
		},
	)

	etlPointsWrittenTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ventus_etl_points_written_total",
			Help: "Total number of aggregate points upserted into the target database",
		},
	)
)

// RecordHTTPRequest records metrics for HTTP requests
func RecordHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	labels := prometheus.Labels{
		"method":      method,
		"path":        path,
		"status_code": strconv.Itoa(statusCode),
	}

	httpRequestsTotal.With(labels).Inc()
	httpRequestDuration.With(labels).Observe(duration.Seconds())
}

// RecordRateLimitedRequest records a request rejected by the rate limiter
func RecordRateLimitedRequest(path string) {
	rateLimitedRequestsTotal.WithLabelValues(path).Inc()
}

// RecordAuthRequest records an API key check. source is "cache" or "store".
func RecordAuthRequest(status, source string) {
	authRequestsTotal.WithLabelValues(status, source).Inc()
}

// RecordETLRun records the outcome of one pipeline run
func RecordETLRun(status string, duration time.Duration) {
	etlRunsTotal.WithLabelValues(status).Inc()
	etlRunDuration.WithLabelValues(status).Observe(duration.Seconds())
}

// RecordPageFetched records one extracted page and its record count
func RecordPageFetched(records int) {
	etlPagesFetchedTotal.Inc()
	etlRecordsExtractedTotal.Add(float64(records))
}

// RecordWindows records the number of windows produced by a transform
func RecordWindows(n int) {
	etlWindowsTotal.Add(float64(n))
}

// RecordPointsWritten records upserted aggregate points
func RecordPointsWritten(n int) {
	etlPointsWrittenTotal.Add(float64(n))
}
