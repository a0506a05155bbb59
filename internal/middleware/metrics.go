package middleware

import (
	"strconv"
	"time"

	"github.com/joshishrau/FacilityFlow/internal/metrics"
	"github.com/wb-go/wbf/ginext"
)

// Metrics records request counts and latencies per route.
func Metrics(m *metrics.Metrics) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.RequestsTotal.WithLabelValues(
			c.Request.Method, route, strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.RequestDuration.WithLabelValues(
			c.Request.Method, route,
		).Observe(time.Since(start).Seconds())
	}
}
