// Package metrics defines the Prometheus collectors exported on /metrics.
// The loader runs as a batch job with no scrape endpoint, so its collectors
// are pushed to a Pushgateway instead.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// LoaderJob is the Pushgateway job name for bulk loads.
const LoaderJob = "movieapi_loader"

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movieapi_http_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movieapi_http_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "movieapi_http_active_requests",
			Help: "Number of requests currently being served",
		},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movieapi_store_errors_total",
			Help: "Record store failures by operation and kind (not_found, validation, internal)",
		},
		[]string{"operation", "kind"},
	)

	LoaderRowsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "movieapi_loader_rows_total",
			Help: "Rows copied into the movies table by the bulk loader",
		},
	)

	LoaderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "movieapi_loader_duration_seconds",
			Help:    "Wall time of bulk loads in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 60, 300},
		},
	)
)

// RecordAPIRequest records a finished request. route is the chi route
// pattern, not the raw path, to keep label cardinality bounded.
func RecordAPIRequest(method, route, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordStoreError counts a failed store call.
func RecordStoreError(operation, kind string) {
	StoreErrors.WithLabelValues(operation, kind).Inc()
}

// RecordLoad records a completed bulk load.
func RecordLoad(rows int64, duration time.Duration) {
	LoaderRowsTotal.Add(float64(rows))
	LoaderDuration.Observe(duration.Seconds())
}

// PushLoad sends the loader collectors to the Pushgateway at url, replacing
// earlier pushes for LoaderJob.
func PushLoad(ctx context.Context, url string) error {
	err := push.New(url, LoaderJob).
		Collector(LoaderRowsTotal).
		Collector(LoaderDuration).
		PushContext(ctx)
	if err != nil {
		return fmt.Errorf("push loader metrics to %s: %w", url, err)
	}
	return nil
}
