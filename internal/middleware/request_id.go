package middleware

import (
	"strings"

	"go-leave/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// Keys set on the gin context for later handlers and middleware.
const (
	KeyRequestID = "request_id"
	KeyActorID   = "actor_id"
)

const maxRequestIDLength = 128

// RequestID keeps a caller-supplied X-Request-ID only when it is short,
// printable ASCII without spaces; anything else is replaced by a new UUID
// so the id is always safe to log and echo.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if !validRequestID(rid) {
			rid = uuid.NewString()
		}

		c.Set(KeyRequestID, rid)
		c.Request = c.Request.WithContext(contextutil.WithRequestID(c.Request.Context(), rid))
		c.Header(HeaderRequestID, rid)
		c.Next()
	}
}

func validRequestID(rid string) bool {
	if rid == "" || len(rid) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(rid); i++ {
		if b := rid[i]; b <= ' ' || b > '~' {
			return false
		}
	}
	return true
}
