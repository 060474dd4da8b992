package middleware

import (
	"time"

	"storelocator/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request durations per route.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle observes the request once the handler chain returns.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			status = statusFromError(err, status)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		m.metrics.ObserveRequest(c.Request().Method, route, status, time.Since(start))

		return err
	}
}
