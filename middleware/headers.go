// File: middleware/headers.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"academy-admin/logger"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// RequestID reuses an inbound X-Request-ID or mints a UUID, and echoes it on
// the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header(RequestIDHeader, id)
		c.Next()

		if len(c.Errors) > 0 {
			logger.Error.Printf("RequestID: %s %s [%s] errors: %s", c.Request.Method, c.Request.URL.Path, id, c.Errors.String())
		}
	}
}

// SecurityHeaders sets the response headers every admin page should carry.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "same-origin")
		c.Next()
	}
}
