package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/unifiedui/collection-service/internal/pkg/metrics"
)

// Metrics returns a gin middleware that records request counts and latency per route.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
