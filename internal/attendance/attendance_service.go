package attendance

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	attendanceerrors "go-payroll/internal/attendance/errors"
	"go-payroll/internal/employee"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Service interface {
	Mark(ctx context.Context, employeeID string, req MarkAttendanceRequest) (AttendanceResponse, error)
	Regularize(ctx context.Context, req RegularizeRequest) (AttendanceResponse, error)
	SummarizeMonth(ctx context.Context, employeeID, month string) (MonthSummaryResponse, error)
	ListForEmployee(ctx context.Context, employeeID, month string) ([]AttendanceResponse, error)
	ListForTeam(ctx context.Context, managerID, month string) ([]AttendanceResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	now          func() time.Time
	logger       *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithClock(db, repo, employeeRepo, time.Now, logger...)
}

// NewServiceWithClock lets tests pin the wall clock the marking windows are
// checked against.
func NewServiceWithClock(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, employeeRepo: employeeRepo, now: now, logger: l}
}

func (s *service) Mark(ctx context.Context, employeeID string, req MarkAttendanceRequest) (AttendanceResponse, error) {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	now := s.now()
	date := now
	if req.Date != "" {
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			return AttendanceResponse{}, attendanceerrors.ErrInvalidDateFormat
		}
	}
	date = truncateToDay(date)

	// Self-marking is same-day only; past days go through Regularize.
	if !date.Equal(truncateToDay(now)) {
		return AttendanceResponse{}, attendanceerrors.ErrNotToday
	}

	if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
		return AttendanceResponse{}, attendanceerrors.ErrOutOfWindow
	}
	if now.Hour() < 9 || now.Hour() >= 18 {
		return AttendanceResponse{}, attendanceerrors.ErrOutOfWindow
	}

	exists, err := s.repo.Exists(ctx, employeeID, date)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if exists {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyMarked
	}

	record := &AttendanceRecord{
		ID:         uuid.New(),
		EmployeeID: eid,
		Date:       date,
		Status:     StatusPresent,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return AttendanceResponse{}, mapUniqueViolation(err)
	}

	return mapToResponse(*record), nil
}

func (s *service) Regularize(ctx context.Context, req RegularizeRequest) (AttendanceResponse, error) {
	eid, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	now := s.now()
	hour, minute := now.Hour(), now.Minute()
	afterOpen := hour > 18 || (hour == 18 && minute >= 1)
	if !afterOpen || hour >= 23 {
		return AttendanceResponse{}, attendanceerrors.ErrRegularizeOutOfWindow
	}

	date := now
	if req.Date != "" {
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			return AttendanceResponse{}, attendanceerrors.ErrInvalidDateFormat
		}
	}
	date = truncateToDay(date)

	exists, err := s.repo.Exists(ctx, req.EmployeeID, date)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if exists {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyMarked
	}

	status := req.Status
	if status == "" {
		status = StatusAbsent
	}

	record := &AttendanceRecord{
		ID:         uuid.New(),
		EmployeeID: eid,
		Date:       date,
		Status:     status,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return AttendanceResponse{}, mapUniqueViolation(err)
	}

	s.logger.Info("attendance regularized",
		zap.String("employee_id", req.EmployeeID),
		zap.String("date", date.Format("2006-01-02")),
		zap.String("status", status),
	)
	return mapToResponse(*record), nil
}

func (s *service) SummarizeMonth(ctx context.Context, employeeID, month string) (MonthSummaryResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return MonthSummaryResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	from, to, err := monthBounds(month)
	if err != nil {
		return MonthSummaryResponse{}, err
	}

	counts, err := s.repo.CountByStatus(ctx, employeeID, from, to)
	if err != nil {
		return MonthSummaryResponse{}, err
	}

	return MonthSummaryResponse{
		EmployeeID:   employeeID,
		Month:        month,
		PresentCount: counts[StatusPresent],
		AbsentCount:  counts[StatusAbsent],
		LeaveCount:   counts[StatusLeave],
		HalfDayCount: counts[StatusHalfDay],
	}, nil
}

func (s *service) ListForEmployee(ctx context.Context, employeeID, month string) ([]AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}

	from, to, err := monthBounds(month)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.FindRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(records), nil
}

func (s *service) ListForTeam(ctx context.Context, managerID, month string) ([]AttendanceResponse, error) {
	if _, err := uuid.Parse(managerID); err != nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}

	from, to, err := monthBounds(month)
	if err != nil {
		return nil, err
	}

	team, err := s.employeeRepo.FindTeam(ctx, managerID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(team))
	for _, member := range team {
		ids = append(ids, member.ID.String())
	}

	records, err := s.repo.FindByEmployees(ctx, ids, from, to)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(records), nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func monthBounds(month string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, attendanceerrors.ErrInvalidMonth
	}
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return attendanceerrors.ErrAlreadyMarked
	}
	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return attendanceerrors.ErrAlreadyMarked
	}
	return err
}
