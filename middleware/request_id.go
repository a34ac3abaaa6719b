package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/SuyashJain1994/Contract-Analyzer/pkg/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an identifier. A client-supplied ID is
// kept so callers can correlate their own traces; otherwise one is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Header(requestIDHeader, id)
		c.Set("request_id", id)

		ctx := context.WithValue(c.Request.Context(), logger.RequestIDKey, id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetRequestID returns the request's identifier, or "" outside the middleware
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		return id.(string)
	}
	return ""
}
