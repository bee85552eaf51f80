package employee

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
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("/getallemployees", middleware.RBACAuthorize(rbacService, "employee", "read"), handler.GetAll)
		employees.POST("/addemployee", middleware.RBACAuthorize(rbacService, "employee", "create"), handler.Create)
		employees.POST("/updateemployee", middleware.RBACAuthorize(rbacService, "employee", "update"), handler.Update)
		employees.GET("/getmanagers", middleware.RBACAuthorize(rbacService, "employee", "read"), handler.GetManagers)
		employees.GET("/getemployee", handler.GetByID)
		employees.GET("/getteam", middleware.RBACAuthorize(rbacService, "employee", "read"), handler.GetTeam)
		employees.POST("/updaterating", middleware.RBACAuthorize(rbacService, "rating", "update"), handler.UpdateRating)
	}
}
