package monitoring

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware creates a gin middleware recording broker request
// durations.
func Middleware(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		metrics.RequestDuration.WithLabelValues(method, path).
			Observe(time.Since(start).Seconds())
	}
}
