// Package v1handler implements the version 1 HTTP API of the service.
package v1handler

import (
	"fmt"
	"net/http"
	"shifts/internal/eligibility"
	"shifts/pkg/metrics"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "shifts/internal/api/handler/v1handler"

// Deps are the services the handlers delegate to.
type Deps struct {
	Eligibility eligibility.Eligibility
}

// Options configure where the handlers publish their metrics.
type Options struct {
	// MeterProvider provides the meter for request metrics.
	MeterProvider metric.MeterProvider
	// Registerer receives the reported errors counter.
	Registerer prometheus.Registerer
}

type Handler struct {
	deps           Deps
	metrics        *metrics.HTTP
	reportedErrors *prometheus.CounterVec
}

// New creates the v1 handler and registers its metrics.
func New(deps Deps, opts Options) (*Handler, error) {
	m, err := metrics.NewHTTP(opts.MeterProvider.Meter(meterName))
	if err != nil {
		return nil, fmt.Errorf("could not create request metrics: %w", err)
	}

	return &Handler{
		deps:           deps,
		metrics:        m,
		reportedErrors: metrics.NewReportedErrors(opts.Registerer),
	}, nil
}

// Routes returns the v1 routes relative to the version prefix.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /shifts/available", h.instrument("/shifts/available", h.AvailableShifts))

	return mux
}

// instrument records the duration and the outcome of every request served by fn.
func (h *Handler) instrument(route string, fn func(w http.ResponseWriter, r *http.Request) int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		status := fn(w, r)

		attrs := metric.WithAttributes(
			attribute.String("http.route", "/v1"+route),
			attribute.String("http.request.method", r.Method),
			attribute.String("http.response.status_code", strconv.Itoa(status)),
		)
		h.metrics.Duration.Record(r.Context(), time.Since(start).Seconds(), attrs)
		h.metrics.Requests.Add(r.Context(), 1, attrs)
	})
}
