package leave

import (
	"net/http"

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
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Request(c *gin.Context) {
	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", err.Error())
		return
	}

	employeeID := c.GetString("employee_id")
	resp, err := h.service.Request(c.Request.Context(), employeeID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

// GetRequests lists an employee's leave history. Employees see only their
// own; privileged roles may pass an employeeId param.
func (h *Handler) GetRequests(c *gin.Context) {
	own := c.GetString("employee_id")
	id := c.Query("employeeId")
	if id == "" {
		id = own
	}
	if id != own && c.GetString("role") == rbac.RoleEmployee {
		response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "access denied", nil)
		return
	}

	resp, err := h.service.ListForEmployee(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetPending(c *gin.Context) {
	managerID := c.GetString("employee_id")

	resp, err := h.service.ListPendingForApprover(c.Request.Context(), managerID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Decide(c *gin.Context) {
	var req DecideLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", err.Error())
		return
	}

	approverID := c.GetString("employee_id")
	if err := h.service.Decide(c.Request.Context(), approverID, req); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": req.Decision}, nil)
}

func (h *Handler) Cancel(c *gin.Context) {
	var req CancelLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", err.Error())
		return
	}

	employeeID := c.GetString("employee_id")
	if err := h.service.Cancel(c.Request.Context(), employeeID, req); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": StatusCancelled}, nil)
}

// GetBalances returns the caller's per-type balances, or another employee's
// for privileged roles.
func (h *Handler) GetBalances(c *gin.Context) {
	own := c.GetString("employee_id")
	id := c.Query("employeeId")
	if id == "" {
		id = own
	}
	if id != own && c.GetString("role") == rbac.RoleEmployee {
		response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "access denied", nil)
		return
	}

	resp, err := h.service.GetBalances(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
