package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the header carrying the request correlation ID
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the gin context key under which the ID is stored
	RequestIDKey = "request_id"
)

// RequestID attaches a correlation ID to every request, reusing the
// client-supplied one when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
