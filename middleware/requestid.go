package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ContextRequestIDKey = "request_id"
	requestIDHeader     = "X-Request-ID"
)

// RequestID tags each request with an id for log correlation. An incoming
// X-Request-ID is honored so upstream proxies can thread their own ids.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(ContextRequestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
