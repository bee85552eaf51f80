package middleware

import (
	"go-payroll/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger attaches a request-scoped logger carrying the request ID and
// user ID, and propagates both through the standard context so services and
// repositories never depend on gin.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// RequestID() normally runs first; fall back if it did not.
		rid := c.GetString("request_id")
		if rid == "" {
			rid = c.GetHeader(requestIDHeader)
		}
		if rid == "" {
			rid = uuid.NewString()
			c.Header(requestIDHeader, rid)
		}

		uid := c.GetString("user_id")

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithUserID(ctx, uid)
		ctx = contextutil.WithLogger(ctx, logger.With(
			zap.String("request_id", rid),
			zap.String("user_id", uid),
		))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
