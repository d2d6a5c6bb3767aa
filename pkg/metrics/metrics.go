// Package metrics holds the Prometheus collectors and OpenTelemetry instruments
// shared by the service.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel/metric"
)

// Namespace prefixes every collector registered by the service.
const Namespace = "shifts"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// NewReportedErrors registers the counter of errors reported by request handlers,
// labeled by semantic error kind.
func NewReportedErrors(reg prometheus.Registerer) *prometheus.CounterVec {
	return promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "reported_errors_total",
		Help:      "Number of errors reported by request handlers.",
	}, []string{"kind"})
}

// HTTP holds the OpenTelemetry instruments recorded for each handled request.
type HTTP struct {
	// Duration is the time spent serving a request in seconds.
	Duration metric.Float64Histogram
	// Requests counts handled requests.
	Requests metric.Int64Counter
}

// NewHTTP creates the request instruments on the given meter.
func NewHTTP(meter metric.Meter) (*HTTP, error) {
	duration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of HTTP server requests."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create request duration histogram: %w", err)
	}

	requests, err := meter.Int64Counter("http.server.request.count",
		metric.WithDescription("Number of HTTP server requests."),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create request counter: %w", err)
	}

	return &HTTP{Duration: duration, Requests: requests}, nil
}
