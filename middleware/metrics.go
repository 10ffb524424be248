package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const unmatchedRoute = "unmatched"

// RequestMetrics counts and times handled requests
type RequestMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewRequestMetrics creates RequestMetrics and registers its collectors with registerer
func NewRequestMetrics(registerer prometheus.Registerer) *RequestMetrics {
	factory := promauto.With(registerer)

	return &RequestMetrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hs_app_http_requests_total",
				Help: "Total number of HTTP requests handled",
			},
			[]string{"method", "route", "status"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hs_app_http_request_duration_seconds",
				Help:    "Time taken to handle HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// Middleware records every request once the rest of the chain has run. Requests are
// labelled with the route pattern rather than the raw path to bound cardinality.
func (m *RequestMetrics) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if len(route) == 0 {
			route = unmatchedRoute
		}

		m.requests.WithLabelValues(ctx.Request.Method, route, strconv.Itoa(ctx.Writer.Status())).Inc()
		m.duration.WithLabelValues(ctx.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
