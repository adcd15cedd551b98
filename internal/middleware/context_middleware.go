package middleware

import (
	"strings"

	"go-leave/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HeaderActorID carries the caller's self-declared employee id. Callers are
// trusted; it scopes logs, rate limits and idempotency keys.
const HeaderActorID = "X-Actor-ID"

// ContextLogger must run after RequestID.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString(KeyRequestID)
		aid := strings.TrimSpace(c.GetHeader(HeaderActorID))
		c.Set(KeyActorID, aid)

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("actor_id", aid),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithActorID(ctx, aid)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
