package middleware

import (
	"time"

	"formgate/internal/logging"
	"formgate/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs each request through the application logger.
// Disabled unless LOG_REQUESTS is set in the configuration.
func RequestLogger(enabled bool) gin.HandlerFunc {
	if !enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)

		logging.GetLogger().LogHTTPRequest(
			method,
			path,
			utils.GetRealIP(c),
			c.Writer.Status(),
			c.Writer.Size(),
			latency.String(),
		)
	}
}
