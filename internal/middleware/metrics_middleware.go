package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/miraihq/mirai-backend/internal/pkg/metrics"
)

// Metrics records request count, latency and in-flight gauge per route.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		metrics.InFlight.Inc()

		c.Next()

		metrics.InFlight.Dec()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		metrics.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.ReqDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}
