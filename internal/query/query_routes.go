package query

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
	q := r.Group("/queries")
	q.Use(middleware.AuthMiddleware())
	{
		q.POST("/addquery", middleware.RBACAuthorize(rbacService, "query", "create"), handler.Add)
		q.GET("/getqueries", middleware.RBACAuthorize(rbacService, "query", "read"), handler.GetQueries)
		q.GET("/getallqueries", middleware.RBACAuthorize(rbacService, "query", "respond"), handler.GetAll)
		q.POST("/responsetoquery", middleware.RBACAuthorize(rbacService, "query", "respond"), handler.Respond)
	}
}
