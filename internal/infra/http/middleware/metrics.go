package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	leadsCaptured = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_captured_total",
			Help: "Total number of leads captured",
		},
		[]string{"source"},
	)

	trialsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trials_created_total",
			Help: "Total number of trials provisioned",
		},
		[]string{"plan"},
	)

	conversionsTracked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "conversions_total",
			Help: "Total number of paid conversions recorded",
		},
	)

	revenueCents = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "revenue_cents_total",
			Help: "Cumulative conversion revenue in cents",
		},
	)

	integrationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "integration_errors_total",
			Help: "Total number of collaborator (email/payment) errors",
		},
		[]string{"service"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordLeadCaptured(source string) {
	leadsCaptured.WithLabelValues(source).Inc()
}

func RecordTrialCreated(plan string) {
	trialsCreated.WithLabelValues(plan).Inc()
}

func RecordConversion(amountCents int64) {
	conversionsTracked.Inc()
	revenueCents.Add(float64(amountCents))
}

func RecordIntegrationError(service string) {
	integrationErrors.WithLabelValues(service).Inc()
}
