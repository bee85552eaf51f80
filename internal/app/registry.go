package app

import (
	"database/sql"

	"go-payroll/internal/attendance"
	"go-payroll/internal/auth"
	"go-payroll/internal/ctc"
	"go-payroll/internal/designation"
	"go-payroll/internal/employee"
	"go-payroll/internal/leave"
	"go-payroll/internal/leavetype"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/middleware"
	"go-payroll/internal/payroll"
	"go-payroll/internal/query"
	"go-payroll/internal/rbac"
	"go-payroll/internal/role"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	roleRepo := role.NewRepository(gormDB)
	designationRepo := designation.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveTypeRepo := leavetype.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	ctcRepo := ctc.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	queryRepo := query.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo)
	roleService := role.NewService(db, roleRepo)
	designationService := designation.NewService(db, designationRepo, rdb)
	employeeService := employee.NewService(db, employeeRepo, authRepo, outboxRepo, rdb)
	leaveTypeService := leavetype.NewService(db, leaveTypeRepo)
	leaveService := leave.NewService(db, leaveRepo, leaveTypeRepo, attendanceRepo)
	attendanceService := attendance.NewService(db, attendanceRepo, employeeRepo)
	ctcService := ctc.NewService(db, ctcRepo)
	payrollService := payroll.NewService(db, payrollRepo, ctcRepo, attendanceRepo, leaveRepo, employeeRepo, outboxRepo)
	queryService := query.NewService(db, queryRepo, payrollRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	roleHandler := role.NewHandler(roleService)
	designationHandler := designation.NewHandler(designationService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveTypeHandler := leavetype.NewHandler(leaveTypeService)
	leaveHandler := leave.NewHandler(leaveService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	ctcHandler := ctc.NewHandler(ctcService)
	payrollHandler := payroll.NewHandler(payrollService)
	queryHandler := query.NewHandler(queryService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, rbacService)
		role.RegisterRoutes(api, roleHandler, rbacService)
		designation.RegisterRoutes(api, designationHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		leavetype.RegisterRoutes(api, leaveTypeHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		ctc.RegisterRoutes(api, ctcHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
		query.RegisterRoutes(api, queryHandler, rbacService)
	}

	return nil
}
