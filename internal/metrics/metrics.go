// Package metrics provides Prometheus metrics collection for the cart service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// CartMutationsTotal tracks cart mutations by operation and outcome.
	CartMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_mutations_total",
			Help: "Total number of cart mutations",
		},
		[]string{"operation", "status"},
	)

	// TotalsCalculationsTotal tracks cart totals calculations.
	TotalsCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_totals_calculations_total",
			Help: "Total number of cart totals calculations",
		},
		[]string{"status"},
	)

	// TotalsCalculationDuration tracks totals calculation duration.
	TotalsCalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cart_totals_calculation_duration_seconds",
			Help:    "Cart totals calculation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
	)

	// ActiveCarts tracks the number of carts currently held in memory.
	ActiveCarts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_carts",
			Help: "Number of carts currently held in memory",
		},
	)

	// CatalogFallbacksTotal counts catalog reads served from the seed data
	// because the database was unavailable.
	CatalogFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_fallbacks_total",
			Help: "Catalog reads served from seed data due to database unavailability",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordCartMutation records metrics for a cart mutation.
func RecordCartMutation(operation, status string) {
	CartMutationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordTotalsCalculation records metrics for a totals calculation.
func RecordTotalsCalculation(duration time.Duration, status string) {
	TotalsCalculationDuration.Observe(duration.Seconds())
	TotalsCalculationsTotal.WithLabelValues(status).Inc()
}

// SetActiveCarts updates the active cart gauge.
func SetActiveCarts(count int) {
	ActiveCarts.Set(float64(count))
}
