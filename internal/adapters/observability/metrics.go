package observability

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const namespace = "trips"

// Planner calls routinely take seconds, so the default buckets stop too early.
var latencyBuckets = []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60}

var (
	HTTPRequests     = counterVec("http_requests_total", "HTTP requests served.", "route", "method", "status")
	HTTPLatency      = histogramVec("http_request_duration_seconds", "HTTP request duration.", "route", "method")
	HTTPInFlight     = prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "http_in_flight_requests", Help: "Requests currently being served."})
	ExternalRequests = counterVec("external_requests_total", "Outbound calls to planners, geocoders and routers.", "service", "endpoint", "status")
	ExternalLatency  = histogramVec("external_request_duration_seconds", "Outbound call duration.", "service", "endpoint")
	CacheEvents      = counterVec("cache_events_total", "Cache hit, miss, set and del events.", "cache", "event")
	Normalized       = counterVec("normalized_total", "Payloads normalized, by detected shape.", "shape")
	Fallbacks        = prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "fallback_total", Help: "Trips served from mock data after an upstream failure."})
)

func counterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: name, Help: help}, labels)
}

func histogramVec(name, help string, labels ...string) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: namespace, Name: name, Help: help, Buckets: latencyBuckets}, labels)
}

// InitRegistry returns a fresh registry with the service collectors and the
// Go runtime and process collectors.
func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	reg.MustRegister(HTTPRequests, HTTPLatency, HTTPInFlight, ExternalRequests, ExternalLatency, CacheEvents, Normalized, Fallbacks)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// Serve exposes /metrics on a side listener until ctx is done.
// An empty addr disables it.
func Serve(ctx context.Context, addr string, reg *prometheus.Registry) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	go func() {
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

// ObserveExternal records an outbound call; status 0 means no response arrived.
func ObserveExternal(service, endpoint string, status int, dur time.Duration) {
	ExternalRequests.WithLabelValues(service, endpoint, strconv.Itoa(status)).Inc()
	ExternalLatency.WithLabelValues(service, endpoint).Observe(dur.Seconds())
}

// ObserveCache event is one of hit, miss, set, del.
func ObserveCache(cache, event string) { CacheEvents.WithLabelValues(cache, event).Inc() }

func ObserveNormalized(shape string) { Normalized.WithLabelValues(shape).Inc() }

func ObserveFallback() { Fallbacks.Inc() }
