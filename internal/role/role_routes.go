package role

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
	roles := r.Group("/roles")
	roles.Use(middleware.AuthMiddleware())
	{
		roles.GET("/getallroles", middleware.RBACAuthorize(rbacService, "role", "read"), handler.GetAll)
		roles.POST("/addrole", middleware.RBACAuthorize(rbacService, "role", "create"), handler.Create)
		roles.POST("/updaterole", middleware.RBACAuthorize(rbacService, "role", "update"), handler.Update)
	}
}
