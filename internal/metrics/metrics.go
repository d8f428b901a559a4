package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "booking_platform",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"service", "method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "booking_platform",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"service", "method", "path"},
	)

	// BookingJobs counts booking-creation job outcomes in the payment
	// pipeline worker.
	BookingJobs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "booking_platform",
			Subsystem: "pipeline",
			Name:      "booking_jobs_total",
			Help:      "Total number of booking-creation job attempts by outcome.",
		},
		[]string{"outcome"},
	)

	// ReconciledInvoices counts invoices the reconciliation pass flagged or
	// requeued after missing the processing SLO.
	ReconciledInvoices = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "booking_platform",
			Subsystem: "pipeline",
			Name:      "reconciled_invoices_total",
			Help:      "Total number of invoices touched by the reconciliation pass.",
		},
		[]string{"action"},
	)
)

func init() {
	Registry.MustRegister(httpRequests, httpDuration, BookingJobs, ReconciledInvoices)
}

// Handler exposes the registry for a /metrics endpoint.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// GinMiddleware instruments every request with count and duration, labelled
// by route template rather than raw path to bound cardinality.
func GinMiddleware(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(service, c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(service, c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
