package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Metrics records method, matched route, status and latency for every request.
func (m Middleware) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.recorder == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.recorder.RecordHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
