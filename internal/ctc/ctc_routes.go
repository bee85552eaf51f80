package ctc

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
	salary := r.Group("/salary")
	salary.Use(middleware.AuthMiddleware())
	{
		salary.GET("/getctcdetails", middleware.RBACAuthorize(rbacService, "ctc", "read"), handler.GetDetails)
		salary.POST("/updatectcdetails", middleware.RBACAuthorize(rbacService, "ctc", "update"), handler.Update)
	}
}
