package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/roypriyanshu02/graphic-walker-app/internal/metrics"
)

// MetricsMiddleware records request count and duration per route. The
// route template is used as the path label so parameterized routes do
// not explode cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		metrics.RequestCounter.WithLabelValues(method, path, status).Inc()
		metrics.RequestDurationHistogram.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
	}
}
