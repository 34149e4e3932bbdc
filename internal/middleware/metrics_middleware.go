package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lenslearn/backend/internal/pkg/metrics"
)

// RequestMetrics counts handled requests by method and status
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		metrics.RequestsTotal.WithLabelValues(
			c.Request.Method,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
