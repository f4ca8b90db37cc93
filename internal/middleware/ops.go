package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	opsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "billing_service",
		Subsystem: "ops",
		Name:      "in_flight_requests",
		Help:      "Current number of in-flight ops requests.",
	})

	opsRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "billing_service",
		Subsystem: "ops",
		Name:      "requests_total",
		Help:      "Total number of ops requests processed.",
	}, []string{"route", "status"})

	opsRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "billing_service",
		Subsystem: "ops",
		Name:      "request_duration",
		Help:      "Ops request latencies in seconds.",
		// Health and readiness checks answer from memory or a single DB
		// ping, so the upper buckets stay well below DefBuckets.
		Buckets: []float64{0.001, 0.005, 0.025, 0.1, 0.5, 2.5},
	}, []string{"route", "status"})
)

// Observe instruments the ops endpoints (health, readiness, metrics).
// The routes are GET-only, so the method label is dropped. Successful
// responses log at Debug because orchestrator health checks poll them
// constantly; failures are promoted to Warn or Error.
func Observe(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			opsInFlight.Inc()
			defer opsInFlight.Dec()

			start := time.Now()
			rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rw, r)

			route := r.URL.Path
			if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
				route = rc.RoutePattern()
			}

			labels := prometheus.Labels{
				"route":  route,
				"status": strconv.Itoa(rw.status),
			}
			opsRequestsTotal.With(labels).Inc()
			opsRequestDuration.With(labels).Observe(time.Since(start).Seconds())

			level := slog.LevelDebug
			switch {
			case rw.status >= http.StatusInternalServerError:
				level = slog.LevelError
			case rw.status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}

			logger.Log(r.Context(), level, "ops request",
				slog.Int("status", rw.status),
				slog.String("route", route),
				slog.String("remote", r.RemoteAddr),
				slog.String("duration", time.Since(start).String()),
				slog.String("request_id", chimw.GetReqID(r.Context())),
			)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
