package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/abernathyclinic/clinic-api/internal/platform/metrics"
)

// Metrics records a Prometheus counter and latency observation per request.
// The route template is used as the path label so ids do not explode the
// label cardinality.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			metrics.RecordHTTPRequest(c.Request().Method, path, c.Response().Status, time.Since(start))

			return err
		}
	}
}
