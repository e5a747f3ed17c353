package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"tripshare/app/utils/metrics"
)

// Metrics records request latency by method and response status.
func Metrics(collector *metrics.Collector) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				}
			}

			collector.RequestDuration.
				WithLabelValues(c.Request().Method, strconv.Itoa(status)).
				Observe(time.Since(start).Seconds())

			return err
		}
	}
}
