package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"daykeeper/pkg/config"
	"daykeeper/pkg/metrics"
	"daykeeper/pkg/util"
)

// RequestLogger logs every request with structured fields and records the
// request duration metric.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		logger.Info("HTTP Request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
		metrics.RecordHTTPRequestDuration(
			c.Request.Method,
			c.FullPath(),
			statusLabel(status),
			latency,
		)
	}
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

// BasicAuth guards the API with HTTP basic auth against the configured
// bcrypt password hash. Callers only install it when a hash is configured.
func BasicAuth(cfg config.AuthConfig) gin.HandlerFunc {
	user := cfg.User
	if user == "" {
		user = "admin"
	}
	return func(c *gin.Context) {
		name, password, ok := c.Request.BasicAuth()
		if !ok || name != user || !util.CheckPassword(password, cfg.PasswordHash) {
			c.Header("WWW-Authenticate", `Basic realm="daykeeper"`)
			c.AbortWithStatusJSON(401, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
