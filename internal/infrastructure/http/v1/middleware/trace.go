package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appctx "adboard/internal/core/context"
)

const requestIDHeader = "X-Request-ID"

// Trace assigns every request an ID, honoring one supplied by the
// client, and carries it in the context for logging.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx := appctx.WithTrace(c.Request.Context(), &appctx.TraceContext{RequestID: requestID})
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set(requestIDHeader, requestID)

		c.Next()
	}
}
