package designation

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
	designations := r.Group("/designation")
	designations.Use(middleware.AuthMiddleware())
	{
		designations.GET("/getalldesignations", middleware.RBACAuthorize(rbacService, "designation", "read"), handler.GetAll)
		designations.POST("/adddesignation", middleware.RBACAuthorize(rbacService, "designation", "create"), handler.Create)
		designations.POST("/updatedesignation", middleware.RBACAuthorize(rbacService, "designation", "update"), handler.Update)
	}
}
