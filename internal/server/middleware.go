package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oshokin/disk-bundler/internal/logger"
)

// requestIDHeader carries the request identifier back to the caller.
const requestIDHeader = "X-Request-Id"

// requestContextMiddleware tags every request with an identifier, puts a
// request-scoped logger into the context, and logs the request outcome.
func requestContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Header(requestIDHeader, requestID)

		ctx := c.Request.Context()
		requestLogger := logger.FromContext(ctx).With("request_id", requestID)
		c.Request = c.Request.WithContext(logger.ToContext(ctx, requestLogger))

		start := time.Now()

		c.Next()

		logger.InfoKV(c.Request.Context(), "Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String())
	}
}
