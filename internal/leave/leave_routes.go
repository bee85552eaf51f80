package leave

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
	req := r.Group("/leaverequest")
	req.Use(middleware.AuthMiddleware())
	{
		req.GET("/getleaverequests", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetRequests)
		req.POST("/requestleave", middleware.RBACAuthorize(rbacService, "leave", "create"), handler.Request)
		req.GET("/getpendingrequests", middleware.RBACAuthorize(rbacService, "leave", "approve"), handler.GetPending)
		req.POST("/updateleaverequest", middleware.RBACAuthorize(rbacService, "leave", "approve"), handler.Decide)
		req.POST("/cancelleaverequest", middleware.RBACAuthorize(rbacService, "leave", "cancel"), handler.Cancel)
	}

	rec := r.Group("/leaverecord")
	rec.Use(middleware.AuthMiddleware())
	{
		rec.GET("/getleaverecord", middleware.RBACAuthorize(rbacService, "leavebalance", "read"), handler.GetBalances)
	}
}
