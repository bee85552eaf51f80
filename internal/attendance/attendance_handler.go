package attendance

import (
	"net/http"
	"time"

	"go-payroll/internal/rbac"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func monthOrCurrent(c *gin.Context) string {
	month := c.Query("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	return month
}

func (h *Handler) Mark(c *gin.Context) {
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", err.Error())
		return
	}

	employeeID := c.GetString("employee_id")
	resp, err := h.service.Mark(c.Request.Context(), employeeID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Regularize(c *gin.Context) {
	var req RegularizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", err.Error())
		return
	}

	resp, err := h.service.Regularize(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

// GetForEmployee lists one month of records. Employees see only their own;
// privileged roles may pass an employeeId param.
func (h *Handler) GetForEmployee(c *gin.Context) {
	own := c.GetString("employee_id")
	id := c.Query("employeeId")
	if id == "" {
		id = own
	}
	if id != own && c.GetString("role") == rbac.RoleEmployee {
		response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "access denied", nil)
		return
	}

	resp, err := h.service.ListForEmployee(c.Request.Context(), id, monthOrCurrent(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetTeam(c *gin.Context) {
	managerID := c.GetString("employee_id")

	resp, err := h.service.ListForTeam(c.Request.Context(), managerID, monthOrCurrent(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetSummary(c *gin.Context) {
	own := c.GetString("employee_id")
	id := c.Query("employeeId")
	if id == "" {
		id = own
	}
	if id != own && c.GetString("role") == rbac.RoleEmployee {
		response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "access denied", nil)
		return
	}

	resp, err := h.service.SummarizeMonth(c.Request.Context(), id, monthOrCurrent(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
