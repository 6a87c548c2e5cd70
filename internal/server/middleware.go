package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordnet_http_requests_total",
			Help: "HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wordnet_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"route"},
	)
)

// requestContext tags the request with an id and attaches a request-scoped
// logger to its context.
func requestContext(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := getOrCreateRequestID(c)
		l := log.With(zap.String("request_id", id))
		c.Request = c.Request.WithContext(ctxzap.ToContext(c.Request.Context(), l))
		c.Next()
	}
}

// observe records metrics and an access log line for every request.
func observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		requestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(status)).Inc()
		requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())

		ctxzap.Extract(c.Request.Context()).Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("elapsed", elapsed),
		)
	}
}
