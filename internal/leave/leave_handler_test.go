package leave_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-payroll/internal/leave"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	requestFn     func(ctx context.Context, employeeID string, req leave.CreateLeaveRequest) (leave.LeaveRequestResponse, error)
	decideFn      func(ctx context.Context, approverID string, req leave.DecideLeaveRequest) error
	cancelFn      func(ctx context.Context, employeeID string, req leave.CancelLeaveRequest) error
	listFn        func(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error)
	listPendingFn func(ctx context.Context, managerID string) ([]leave.LeaveRequestResponse, error)
	balancesFn    func(ctx context.Context, employeeID string) ([]leave.LeaveBalanceResponse, error)
	provisionFn   func(ctx context.Context, employeeID string) error
}

func (f *fakeService) Request(ctx context.Context, employeeID string, req leave.CreateLeaveRequest) (leave.LeaveRequestResponse, error) {
	return f.requestFn(ctx, employeeID, req)
}
func (f *fakeService) Decide(ctx context.Context, approverID string, req leave.DecideLeaveRequest) error {
	return f.decideFn(ctx, approverID, req)
}
func (f *fakeService) Cancel(ctx context.Context, employeeID string, req leave.CancelLeaveRequest) error {
	return f.cancelFn(ctx, employeeID, req)
}
func (f *fakeService) ListForEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	return f.listFn(ctx, employeeID)
}
func (f *fakeService) ListPendingForApprover(ctx context.Context, managerID string) ([]leave.LeaveRequestResponse, error) {
	return f.listPendingFn(ctx, managerID)
}
func (f *fakeService) GetBalances(ctx context.Context, employeeID string) ([]leave.LeaveBalanceResponse, error) {
	return f.balancesFn(ctx, employeeID)
}
func (f *fakeService) ProvisionBalances(ctx context.Context, employeeID string) error {
	return f.provisionFn(ctx, employeeID)
}

type allowAllRBAC struct{}

func (allowAllRBAC) Enforce(req rbac.EnforceRequest) (bool, error) { return true, nil }

func TestLeaveRoutes_DecisionEndpointsArePost(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	leave.RegisterRoutes(r.Group("/api/v1"), leave.NewHandler(&fakeService{}), allowAllRBAC{})

	methods := map[string]string{}
	for _, route := range r.Routes() {
		methods[route.Path] = route.Method
	}

	assert.Equal(t, http.MethodPost, methods["/api/v1/leaverequest/updateleaverequest"])
	assert.Equal(t, http.MethodPost, methods["/api/v1/leaverequest/cancelleaverequest"])
	assert.Equal(t, http.MethodGet, methods["/api/v1/leaverequest/getpendingrequests"])
}

func TestHandler_GetRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	own := uuid.New().String()
	other := uuid.New().String()

	t.Run("privileged role reads another employee via employeeId", func(t *testing.T) {
		svc := &fakeService{
			listFn: func(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
				assert.Equal(t, other, employeeID)
				return []leave.LeaveRequestResponse{{}}, nil
			},
		}
		h := leave.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("employee_id", own)
		c.Set("role", rbac.RoleHRManager)
		c.Request = httptest.NewRequest(http.MethodGet, "/leaverequest/getleaverequests?employeeId="+other, nil)

		h.GetRequests(c)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("falls back to own record without the param", func(t *testing.T) {
		svc := &fakeService{
			listFn: func(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
				assert.Equal(t, own, employeeID)
				return nil, nil
			},
		}
		h := leave.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("employee_id", own)
		c.Set("role", rbac.RoleEmployee)
		c.Request = httptest.NewRequest(http.MethodGet, "/leaverequest/getleaverequests", nil)

		h.GetRequests(c)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("employee may not read someone else", func(t *testing.T) {
		h := leave.NewHandler(&fakeService{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("employee_id", own)
		c.Set("role", rbac.RoleEmployee)
		c.Request = httptest.NewRequest(http.MethodGet, "/leaverequest/getleaverequests?employeeId="+other, nil)

		h.GetRequests(c)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
