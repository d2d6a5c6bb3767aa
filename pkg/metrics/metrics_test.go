package metrics_test

import (
	"context"
	"shifts/pkg/metrics"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestNewReportedErrors(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := metrics.NewReportedErrors(reg)

	counter.WithLabelValues("INTERNAL").Inc()
	counter.WithLabelValues("INTERNAL").Inc()
	counter.WithLabelValues("BAD_REQUEST").Inc()

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	require.Equal(t, "shifts_reported_errors_total", families[0].GetName())

	values := make(map[string]float64)
	for _, m := range families[0].GetMetric() {
		values[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
	}
	require.Equal(t, map[string]float64{"INTERNAL": 2, "BAD_REQUEST": 1}, values)
}

func TestNewHTTP(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m, err := metrics.NewHTTP(mp.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	m.Requests.Add(ctx, 1)
	m.Duration.Record(ctx, 0.02)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	names := make([]string, 0, 2)
	for _, m := range rm.ScopeMetrics[0].Metrics {
		names = append(names, m.Name)
	}
	require.ElementsMatch(t, []string{"http.server.request.duration", "http.server.request.count"}, names)
}
