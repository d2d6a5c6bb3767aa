package api_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"shifts/internal/api"
	"shifts/internal/api/handler/v1handler"
	"shifts/pkg/controller"
	"testing"
	"time"

	mockeligibility "shifts/internal/eligibility/mock"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func newTestServer(t *testing.T, pingErr error) http.Handler {
	t.Helper()

	reg := prometheus.NewRegistry()
	srv, err := api.NewServer(api.Deps{
		Deps:    v1handler.Deps{Eligibility: mockeligibility.NewMockEligibility(gomock.NewController(t))},
		Pingers: []controller.Pinger{pinger{err: pingErr}},
	}, api.Options{
		Addr:           ":0",
		RequestTimeout: time.Second,
		MetricsPath:    "/metrics",
		Registerer:     reg,
		Gatherer:       reg,
	})
	require.NoError(t, err)

	return srv.Handler
}

func get(t *testing.T, h http.Handler, target string) (*http.Response, string) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	res := rec.Result()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, string(body)
}

func TestNewServer_Routes(t *testing.T) {
	h := newTestServer(t, nil)

	res, body := get(t, h, "/specs/v1.yaml")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/yaml", res.Header.Get("Content-Type"))
	require.Contains(t, body, "/shifts/available")

	res, _ = get(t, h, "/healthz")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotEmpty(t, res.Header.Get(controller.RequestIDHeader))

	res, _ = get(t, h, "/v1/docs/")
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = get(t, h, "/debug/pprof/cmdline")
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestNewServer_Unhealthy(t *testing.T) {
	h := newTestServer(t, errors.New("connection refused"))

	res, body := get(t, h, "/healthz")
	require.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
	require.Equal(t, "unavailable", body)
}

func TestNewServer_V1Metrics(t *testing.T) {
	h := newTestServer(t, nil)

	// rejected before reaching the service
	res, body := get(t, h, "/v1/shifts/available?workerId=1")
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.JSONEq(t, `{"code":"BAD_REQUEST","message":"facilityId is required"}`, body)
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))

	res, body = get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, `shifts_reported_errors_total{kind="BAD_REQUEST"} 1`)
}
