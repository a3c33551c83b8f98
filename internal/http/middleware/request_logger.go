package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/sponsorship-backend/internal/logger"
	"github.com/ignatzorin/sponsorship-backend/internal/metrics"
)

// RequestLogger пишет строку лога и метрику на каждый запрос.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		metrics.CollectHTTPRequest(c.Request.Method, route, status, start)

		entry := logger.Log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"route":    route,
			"status":   status,
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		})
		switch {
		case status >= 500:
			entry.Error("http запрос")
		case status >= 400:
			entry.Warn("http запрос")
		default:
			entry.Debug("http запрос")
		}
	}
}
