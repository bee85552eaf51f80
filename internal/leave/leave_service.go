package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-payroll/internal/attendance"
	leaveerrors "go-payroll/internal/leave/errors"
	"go-payroll/internal/leavetype"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Request(ctx context.Context, employeeID string, req CreateLeaveRequest) (LeaveRequestResponse, error)
	Decide(ctx context.Context, approverID string, req DecideLeaveRequest) error
	Cancel(ctx context.Context, employeeID string, req CancelLeaveRequest) error
	ListForEmployee(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)
	ListPendingForApprover(ctx context.Context, managerID string) ([]LeaveRequestResponse, error)
	GetBalances(ctx context.Context, employeeID string) ([]LeaveBalanceResponse, error)
	ProvisionBalances(ctx context.Context, employeeID string) error
}

type service struct {
	db             *sql.DB
	repo           Repository
	typeRepo       leavetype.Repository
	attendanceRepo attendance.Repository
	now            func() time.Time
	logger         *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	typeRepo leavetype.Repository,
	attendanceRepo attendance.Repository,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithClock(db, repo, typeRepo, attendanceRepo, time.Now, logger...)
}

// NewServiceWithClock lets tests pin the date the past-date guards compare
// against.
func NewServiceWithClock(
	db *sql.DB,
	repo Repository,
	typeRepo leavetype.Repository,
	attendanceRepo attendance.Repository,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:             db,
		repo:           repo,
		typeRepo:       typeRepo,
		attendanceRepo: attendanceRepo,
		now:            now,
		logger:         l,
	}
}

func (s *service) Request(ctx context.Context, employeeID string, req CreateLeaveRequest) (LeaveRequestResponse, error) {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	tid, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidLeaveTypeID
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	if endDate.Before(startDate) {
		return LeaveRequestResponse{}, leaveerrors.ErrInvalidDateRange
	}
	if startDate.Before(s.today()) {
		return LeaveRequestResponse{}, leaveerrors.ErrStartDateInPast
	}

	leaveType, err := s.typeRepo.FindByID(ctx, tid.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaveerrors.ErrInvalidLeaveTypeID
		}
		return LeaveRequestResponse{}, err
	}

	days := RequestedDays(startDate, endDate, req.StartHalf, req.EndHalf)

	balance, err := s.repo.FindBalance(ctx, eid, tid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaveerrors.ErrBalanceNotFound
		}
		return LeaveRequestResponse{}, err
	}
	if balance.Remaining < days {
		return LeaveRequestResponse{}, leaveerrors.ErrLeavesExhausted
	}

	request := &LeaveRequest{
		ID:          uuid.New(),
		EmployeeID:  eid,
		LeaveTypeID: tid,
		StartDate:   startDate,
		StartHalf:   req.StartHalf,
		EndDate:     endDate,
		EndHalf:     req.EndHalf,
		Reason:      req.Reason,
		Status:      StatusPending,
		NoOfDays:    days,
	}
	if err := s.repo.CreateRequest(ctx, request); err != nil {
		return LeaveRequestResponse{}, err
	}

	s.logger.Info("leave requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("leave_request_id", request.ID.String()),
		zap.String("employee_id", employeeID),
		zap.Float64("no_of_days", days),
	)

	return mapRequestToResponse(LeaveRequestWithNames{
		LeaveRequest:  *request,
		LeaveTypeName: leaveType.Name,
	}), nil
}

// Decide approves or rejects a pending request. Approval debits the balance
// and writes Leave rows into the attendance table for every day in the range,
// skipping days the employee already marked.
func (s *service) Decide(ctx context.Context, approverID string, req DecideLeaveRequest) error {
	aid, err := uuid.Parse(approverID)
	if err != nil {
		return leaveerrors.ErrInvalidEmployeeID
	}
	rid, err := uuid.Parse(req.RequestID)
	if err != nil {
		return leaveerrors.ErrLeaveRequestNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	request, err := qtx.FindRequestByID(ctx, rid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leaveerrors.ErrLeaveRequestNotFound
		}
		return err
	}
	if request.Status != StatusPending {
		return leaveerrors.ErrInvalidTransition
	}

	reports, err := qtx.EmployeeReportsTo(ctx, request.EmployeeID, aid)
	if err != nil {
		return err
	}
	if !reports {
		return leaveerrors.ErrNotDirectReport
	}

	if req.Decision == StatusApproved {
		balance, err := qtx.FindBalance(ctx, request.EmployeeID, request.LeaveTypeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return leaveerrors.ErrBalanceNotFound
			}
			return err
		}
		if balance.Remaining < request.NoOfDays {
			return leaveerrors.ErrLeavesExhausted
		}
		balance.Used += request.NoOfDays
		balance.Remaining = balance.Total - balance.Used
		if err := qtx.UpdateBalance(ctx, balance); err != nil {
			return err
		}

		if err := s.attendanceRepo.WithTx(tx).CreateMany(ctx, leaveAttendanceRows(request)); err != nil {
			return err
		}
	}

	request.Status = req.Decision
	request.Description = req.Description
	request.ResolvedBy = &aid
	if err := qtx.UpdateRequest(ctx, request); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("leave request decided",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("leave_request_id", request.ID.String()),
		zap.String("decision", req.Decision),
		zap.String("approver_id", approverID),
	)
	return nil
}

// Cancel voids a pending or approved request while it has not started yet.
// Cancelling an approved request credits the days back and removes the leave
// rows from attendance; days the employee marked themselves stay untouched.
func (s *service) Cancel(ctx context.Context, employeeID string, req CancelLeaveRequest) error {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return leaveerrors.ErrInvalidEmployeeID
	}
	rid, err := uuid.Parse(req.RequestID)
	if err != nil {
		return leaveerrors.ErrLeaveRequestNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	request, err := qtx.FindRequestByID(ctx, rid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leaveerrors.ErrLeaveRequestNotFound
		}
		return err
	}
	if request.EmployeeID != eid {
		return leaveerrors.ErrNotRequestOwner
	}
	if request.Status != StatusPending && request.Status != StatusApproved {
		return leaveerrors.ErrInvalidTransition
	}
	if request.StartDate.Before(s.today()) {
		return leaveerrors.ErrCancelWindowClosed
	}

	if request.Status == StatusApproved {
		balance, err := qtx.FindBalance(ctx, request.EmployeeID, request.LeaveTypeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return leaveerrors.ErrBalanceNotFound
			}
			return err
		}
		balance.Used -= request.NoOfDays
		if balance.Used < 0 {
			balance.Used = 0
		}
		balance.Remaining = balance.Total - balance.Used
		if err := qtx.UpdateBalance(ctx, balance); err != nil {
			return err
		}

		err = s.attendanceRepo.WithTx(tx).DeleteLeaveRange(ctx, request.EmployeeID.String(), request.StartDate, request.EndDate)
		if err != nil {
			return err
		}
	}

	request.Status = StatusCancelled
	request.Description = "Cancelled."
	if err := qtx.UpdateRequest(ctx, request); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("leave request cancelled",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("leave_request_id", request.ID.String()),
		zap.String("employee_id", employeeID),
	)
	return nil
}

func (s *service) ListForEmployee(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error) {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}
	requests, err := s.repo.FindRequestsByEmployee(ctx, eid)
	if err != nil {
		return nil, err
	}
	return mapRequestsToResponse(requests), nil
}

func (s *service) ListPendingForApprover(ctx context.Context, managerID string) ([]LeaveRequestResponse, error) {
	mid, err := uuid.Parse(managerID)
	if err != nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}
	requests, err := s.repo.FindPendingForManager(ctx, mid)
	if err != nil {
		return nil, err
	}
	return mapRequestsToResponse(requests), nil
}

func (s *service) GetBalances(ctx context.Context, employeeID string) ([]LeaveBalanceResponse, error) {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}
	balances, err := s.repo.FindBalances(ctx, eid)
	if err != nil {
		return nil, err
	}
	return mapBalancesToResponse(balances), nil
}

// ProvisionBalances seeds one full balance row per configured leave type for
// a newly registered employee. Existing rows are left alone so the employee
// lifecycle consumer can retry safely.
func (s *service) ProvisionBalances(ctx context.Context, employeeID string) error {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return leaveerrors.ErrInvalidEmployeeID
	}

	types, err := s.typeRepo.FindAll(ctx)
	if err != nil {
		return err
	}

	balances := make([]LeaveBalance, 0, len(types))
	for _, lt := range types {
		balances = append(balances, LeaveBalance{
			ID:          uuid.New(),
			EmployeeID:  eid,
			LeaveTypeID: lt.ID,
			Total:       lt.NumberOfLeaves,
			Used:        0,
			Remaining:   lt.NumberOfLeaves,
		})
	}
	if err := s.repo.CreateBalances(ctx, balances); err != nil {
		return err
	}

	s.logger.Info("leave balances provisioned",
		zap.String("employee_id", employeeID),
		zap.Int("leave_types", len(balances)),
	)
	return nil
}

func (s *service) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// leaveAttendanceRows expands an approved request into per-day attendance
// rows, Half Day where only half the day is taken.
func leaveAttendanceRows(request *LeaveRequest) []attendance.AttendanceRecord {
	rows := make([]attendance.AttendanceRecord, 0)
	for day := request.StartDate; !day.After(request.EndDate); day = day.AddDate(0, 0, 1) {
		status := attendance.StatusLeave
		if dayPortion(day, request.StartDate, request.EndDate, request.StartHalf, request.EndHalf) == 0.5 {
			status = attendance.StatusHalfDay
		}
		rows = append(rows, attendance.AttendanceRecord{
			ID:         uuid.New(),
			EmployeeID: request.EmployeeID,
			Date:       day,
			Status:     status,
		})
	}
	return rows
}
