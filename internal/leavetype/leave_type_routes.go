package leavetype

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	types := r.Group("/leavetype")
	types.Use(middleware.AuthMiddleware())
	{
		types.GET("/getalltypes", handler.GetAll)
		types.POST("/addleavetype", middleware.RBACAuthorize(rbacService, "leavetype", "create"), handler.Create)
		types.POST("/updateleavetype", middleware.RBACAuthorize(rbacService, "leavetype", "update"), handler.Update)
	}
}
