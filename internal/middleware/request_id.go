package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"director-agent/pkg/log"
)

// RequestID reuses the inbound X-Request-ID or generates one, echoes it on the
// response and stores it in the request context for the logger.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
