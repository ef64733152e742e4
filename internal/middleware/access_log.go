package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "director-agent/pkg/errors"
	"director-agent/pkg/response"
)

// AccessLog writes one line per request once the handler chain has finished.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)

		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%s %s %d %s", c.Request.Method, path, status, latency)
		case status >= 400:
			m.l.Warnf(ctx, "%s %s %d %s", c.Request.Method, path, status, latency)
		default:
			m.l.Infof(ctx, "%s %s %d %s", c.Request.Method, path, status, latency)
		}
	}
}

// Recovery converts a panic into a 500 and logs it.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		m.l.Errorf(c.Request.Context(), "panic recovered: %v", recovered)
		response.HTTPError(c, pkgErrors.ErrInternalServerError)
		c.Abort()
	})
}
