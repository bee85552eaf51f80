package payroll

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	sal := r.Group("/salaryrecord")
	sal.Use(middleware.AuthMiddleware())
	{
		sal.GET("/calculatesalary", middleware.RBACAuthorize(rbacService, "salary", "calculate"), handler.Calculate)
		sal.POST("/releasesalary",
			middleware.RBACAuthorize(rbacService, "salary", "release"),
			middleware.Idempotency(rdb),
			handler.Release,
		)
		sal.GET("/getsalary", middleware.RBACAuthorize(rbacService, "salary", "read"), handler.GetSalary)
		sal.GET("/getallsalaries", middleware.RBACAuthorize(rbacService, "salary", "report"), handler.GetAll)
		sal.GET("/getquartersalary", middleware.RBACAuthorize(rbacService, "salary", "report"), handler.GetQuarterSalary)
		sal.GET("/getquartertax", middleware.RBACAuthorize(rbacService, "salary", "read"), handler.GetQuarterTax)
		sal.GET("/payslip", middleware.RBACAuthorize(rbacService, "salary", "read"), handler.Payslip)
	}
}
