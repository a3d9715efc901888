package observability_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"london_trips/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record one sample of each so the series are exported
	observability.ObserveHTTP("/test", "GET", 200, 12*time.Millisecond)
	observability.ObserveExternal("planner", "/plan", 502, 30*time.Millisecond)
	observability.ObserveNormalized("keyed_by_day")
	observability.ObserveFallback()

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	for _, want := range []string{
		"trips_http_requests_total",
		`trips_external_requests_total{endpoint="/plan",service="planner",status="502"}`,
		`trips_normalized_total{shape="keyed_by_day"}`,
		"trips_fallback_total",
		"trips_http_in_flight_requests",
		"go_goroutines",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output", want)
		}
	}
}

func TestServe_EmptyAddrIsNoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	observability.Serve(ctx, "", observability.InitRegistry())
}

func TestNewLogger(t *testing.T) {
	for _, env := range []string{"dev", "prod"} {
		l := observability.NewLogger(env, "debug")
		l.Info().Str("env", env).Msg("logger ok")
	}
}
