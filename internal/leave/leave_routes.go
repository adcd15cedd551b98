package leave

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the leave endpoints. writeMiddleware runs before
// every state-changing handler (rate limiting, idempotency).
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	writeMiddleware ...gin.HandlerFunc,
) {
	write := func(h gin.HandlerFunc) []gin.HandlerFunc {
		chain := make([]gin.HandlerFunc, 0, len(writeMiddleware)+1)
		chain = append(chain, writeMiddleware...)
		return append(chain, h)
	}

	leaves := r.Group("/leaves")
	{
		leaves.GET("", handler.GetAll)
		leaves.GET("/pending", handler.GetPending)
		leaves.GET("/:id", handler.GetById)
		leaves.POST("", write(handler.Create)...)
		leaves.POST("/:id/approve", write(handler.Approve)...)
		leaves.POST("/:id/reject", write(handler.Reject)...)
	}

	r.GET("/employees/:id/leaves", handler.GetHistory)
}
