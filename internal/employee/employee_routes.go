package employee

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	writeMiddleware ...gin.HandlerFunc,
) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:id", handler.GetById)
		employees.GET("/:id/balances", handler.GetBalances)
		employees.POST("", append(append([]gin.HandlerFunc{}, writeMiddleware...), handler.Create)...)
	}
}
