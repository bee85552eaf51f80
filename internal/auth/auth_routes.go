package auth

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
	users := r.Group("/users")
	{
		users.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		users.GET("/getuserrole", middleware.AuthMiddleware(), middleware.RBACAuthorize(rbacService, "user", "read"), handler.GetUserRole)
		users.POST("/updaterole", middleware.AuthMiddleware(), middleware.RBACAuthorize(rbacService, "user", "update"), handler.UpdateRole)
		users.POST("/updatepassword", middleware.AuthMiddleware(), middleware.RateLimitByUser(2, 5), handler.UpdatePassword)
	}

	logs := r.Group("/loginlogs")
	logs.Use(middleware.AuthMiddleware())
	{
		logs.GET("/getlogs", middleware.RBACAuthorize(rbacService, "loginlog", "read"), handler.GetLogs)
		logs.POST("/setlogoutlog", handler.SetLogoutLog)
	}
}
