package attendance

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
	att := r.Group("/attendance")
	att.Use(middleware.AuthMiddleware())
	{
		att.GET("/getattendanceforemployee", handler.GetForEmployee)
		att.GET("/getsummary", handler.GetSummary)
		att.POST("/markattendance", middleware.RBACAuthorize(rbacService, "attendance", "mark"), handler.Mark)
		att.GET("/getteamattendance", middleware.RBACAuthorize(rbacService, "attendance", "read"), handler.GetTeam)
		att.POST("/regularize", middleware.RBACAuthorize(rbacService, "attendance", "regularize"), handler.Regularize)
	}
}
