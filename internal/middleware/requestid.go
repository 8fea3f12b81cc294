package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request identifier on both sides of the wire.
const RequestIDHeader = "X-Request-ID"

const ctxRequestIDKey = "request_id"

// RequestID attaches a unique identifier to every request, honouring one
// supplied by the caller, and echoes it in the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(ctxRequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestIDFromContext returns the identifier set by RequestID, or "".
func RequestIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(ctxRequestIDKey)
}
