// Package metrics exposes the Prometheus collectors of the API.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Transfer outcomes.
const (
	TransferGranted = "granted"
	TransferRefused = "refused"
	TransferFailed  = "error"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "aura",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aura",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "aura",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	transfers = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aura",
			Subsystem: "bank",
			Name:      "transfers_total",
			Help:      "Transfers by outcome.",
		},
		[]string{"outcome"},
	)

	logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aura",
			Subsystem: "bank",
			Name:      "logins_total",
			Help:      "Login attempts by outcome.",
		},
		[]string{"granted"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		transfers,
		logins,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHandler is a middleware recording request count and latency,
// labelled by the matched chi route pattern.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		route := routePattern(r)
		method := strings.ToUpper(r.Method)

		httpRequests.WithLabelValues(method, route, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	})
}

// RecordTransfer counts one transfer with the given outcome.
func RecordTransfer(outcome string) {
	transfers.WithLabelValues(outcome).Inc()
}

func RecordLogin(granted bool) {
	logins.WithLabelValues(strconv.FormatBool(granted)).Inc()
}

// routePattern keeps label cardinality bounded: unmatched paths share one
// label instead of one per URL.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "unmatched"
	}

	pattern := rctx.RoutePattern()
	if pattern == "" {
		return "unmatched"
	}

	return pattern
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
