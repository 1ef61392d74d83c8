package server

import (
	"time"

	"eaglegym/internal/logger"
	"eaglegym/internal/session"

	"github.com/gin-gonic/gin"
)

// quietPaths are polled by infrastructure and only logged at debug level.
var quietPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// RequestLoggingMiddleware logs one structured line per request.
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", path,
			"route", c.FullPath(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if sess, ok := session.FromContext(c); ok {
			args = append(args, "session_id", sess.ID.String(), "branch", sess.Selection.SelectedBranch())
		}
		if len(c.Errors) > 0 {
			args = append(args, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			logger.Error("HTTP request", args...)
		case quietPaths[c.Request.URL.Path]:
			logger.Debug("HTTP request", args...)
		default:
			logger.Info("HTTP request", args...)
		}
	}
}
