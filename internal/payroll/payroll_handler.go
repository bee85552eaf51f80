package payroll

import (
	"net/http"
	"strconv"
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
	l := zap.L().Named("payroll.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("payroll request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Calculate(c *gin.Context) {
	employeeID := c.Query("employeeId")
	month := c.Query("month")
	if employeeID == "" || month == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", "employeeId and month query parameters are required")
		return
	}

	resp, err := h.service.Calculate(c.Request.Context(), employeeID, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Release(c *gin.Context) {
	var req ReleaseSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", err.Error())
		return
	}

	actorID := c.GetString("user_id")
	resp, err := h.service.Release(c.Request.Context(), actorID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

// GetSalary lists released records. Employees see only their own; privileged
// roles may pass an employeeId param.
func (h *Handler) GetSalary(c *gin.Context) {
	own := c.GetString("employee_id")
	id := c.Query("employeeId")
	if id == "" {
		id = own
	}
	if id != own && c.GetString("role") == rbac.RoleEmployee {
		response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "access denied", nil)
		return
	}

	resp, err := h.service.GetByEmployee(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetQuarterSalary(c *gin.Context) {
	resp, err := h.service.QuarterSummary(c.Request.Context(), c.Query("quarter"), yearOrCurrent(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetQuarterTax(c *gin.Context) {
	own := c.GetString("employee_id")
	id := c.Query("employeeId")
	if id == "" {
		id = own
	}
	if id != own && c.GetString("role") == rbac.RoleEmployee {
		response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "access denied", nil)
		return
	}

	resp, err := h.service.QuarterTax(c.Request.Context(), c.Query("quarter"), yearOrCurrent(c), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Payslip(c *gin.Context) {
	recordID := c.Query("recordId")
	if recordID == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", "recordId query parameter is required")
		return
	}

	onlyFor := ""
	if c.GetString("role") == rbac.RoleEmployee {
		onlyFor = c.GetString("employee_id")
	}

	pdf, err := h.service.Payslip(c.Request.Context(), recordID, onlyFor)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="payslip.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func yearOrCurrent(c *gin.Context) int {
	if y, err := strconv.Atoi(c.Query("year")); err == nil && y > 0 {
		return y
	}
	return time.Now().Year()
}
