package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-payroll/internal/attendance"
	"go-payroll/internal/ctc"
	"go-payroll/internal/employee"
	"go-payroll/internal/events"
	"go-payroll/internal/leave"
	"go-payroll/internal/messaging/kafka"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// marriageLeaveType is the leave type whose approved requests trigger the
// one-off marriage bonus in the overlapping pay period.
const marriageLeaveType = "Marriage Leave"

type Service interface {
	Calculate(ctx context.Context, employeeID, month string) (SalaryRecordResponse, error)
	Release(ctx context.Context, actorID string, req ReleaseSalaryRequest) (SalaryRecordResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]SalaryRecordResponse, error)
	GetAll(ctx context.Context) ([]SalaryRecordResponse, error)
	QuarterSummary(ctx context.Context, quarter string, year int) (QuarterSummaryResponse, error)
	QuarterTax(ctx context.Context, quarter string, year int, employeeID string) (QuarterTaxResponse, error)
	Payslip(ctx context.Context, recordID, onlyFor string) ([]byte, error)
}

type service struct {
	db             *sql.DB
	repo           Repository
	ctcRepo        ctc.Repository
	attendanceRepo attendance.Repository
	leaveRepo      leave.Repository
	employeeRepo   employee.Repository
	outbox         kafka.OutboxRepository
	now            func() time.Time
	logger         *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	ctcRepo ctc.Repository,
	attendanceRepo attendance.Repository,
	leaveRepo leave.Repository,
	employeeRepo employee.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithClock(db, repo, ctcRepo, attendanceRepo, leaveRepo, employeeRepo, outbox, time.Now, logger...)
}

// NewServiceWithClock lets tests pin the clock the quarter-elapsed guard is
// checked against.
func NewServiceWithClock(
	db *sql.DB,
	repo Repository,
	ctcRepo ctc.Repository,
	attendanceRepo attendance.Repository,
	leaveRepo leave.Repository,
	employeeRepo employee.Repository,
	outbox kafka.OutboxRepository,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:             db,
		repo:           repo,
		ctcRepo:        ctcRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		employeeRepo:   employeeRepo,
		outbox:         outbox,
		now:            now,
		logger:         l,
	}
}

// draft is a computed month of pay plus the employee fields the responses
// carry. Nothing here has touched the salary_records table.
type draft struct {
	record SalaryRecordWithEmployee
}

func (s *service) buildDraft(ctx context.Context, eid uuid.UUID, monthStart time.Time) (*draft, error) {
	empl, err := s.employeeRepo.FindEntityByID(ctx, eid.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	ctcRow, err := s.ctcRepo.FindByEmployee(ctx, eid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrCTCNotSet
		}
		return nil, err
	}
	if ctcRow.CostToCompany <= 0 {
		return nil, payrollerrors.ErrCTCNotSet
	}

	monthEnd := monthStart.AddDate(0, 1, -1)
	if empl.JoiningDate.After(monthEnd) {
		return nil, payrollerrors.ErrMonthBeforeJoining
	}

	counts, err := s.attendanceRepo.CountByStatus(ctx, eid.String(), monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	absents := counts[attendance.StatusAbsent]

	// Days of the joining month before the joining date are unpaid, same as
	// absences.
	if !empl.JoiningDate.Before(monthStart) {
		absents += int(empl.JoiningDate.Sub(monthStart).Hours() / 24)
	}

	marriage, err := s.hasMarriageLeave(ctx, eid, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	breakdown := ComputeSalary(SalaryInputs{
		CTC:           ctcRow.CostToCompany,
		DaysInMonth:   monthEnd.Day(),
		AbsentDays:    absents,
		BirthdayMonth: empl.DateOfBirth.Month() == monthStart.Month(),
		FestivalMonth: monthStart.Month() == time.November,
		MarriageLeave: marriage,
	})

	return &draft{record: SalaryRecordWithEmployee{
		SalaryRecord: SalaryRecord{
			EmployeeID:     eid,
			PayPeriodStart: monthStart,
			Gross:          breakdown.Gross,
			Bonus:          breakdown.Bonus,
			PF:             breakdown.PF,
			Penalty:        breakdown.Penalty,
			Tax:            breakdown.Tax,
			NetPay:         breakdown.NetPay,
			AbsentDays:     absents,
		},
		FullName:    empl.FullName,
		JoiningDate: empl.JoiningDate,
	}}, nil
}

func (s *service) hasMarriageLeave(ctx context.Context, eid uuid.UUID, from, to time.Time) (bool, error) {
	requests, err := s.leaveRepo.FindApprovedByType(ctx, eid, marriageLeaveType)
	if err != nil {
		return false, err
	}
	for _, r := range requests {
		if !r.StartDate.After(to) && !r.EndDate.Before(from) {
			return true, nil
		}
	}
	return false, nil
}

func (s *service) Calculate(ctx context.Context, employeeID, month string) (SalaryRecordResponse, error) {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return SalaryRecordResponse{}, payrollerrors.ErrInvalidEmployeeID
	}
	monthStart, err := parseMonth(month)
	if err != nil {
		return SalaryRecordResponse{}, err
	}

	d, err := s.buildDraft(ctx, eid, monthStart)
	if err != nil {
		return SalaryRecordResponse{}, err
	}

	resp := mapToResponse(d.record)
	resp.ID = ""
	return resp, nil
}

// Release persists one month of pay exactly once. The check inside the
// transaction and the (employee_id, pay_period_start) unique index together
// keep a double release out even across concurrent callers.
func (s *service) Release(ctx context.Context, actorID string, req ReleaseSalaryRequest) (SalaryRecordResponse, error) {
	eid, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return SalaryRecordResponse{}, payrollerrors.ErrInvalidEmployeeID
	}
	monthStart, err := parseMonth(req.Month)
	if err != nil {
		return SalaryRecordResponse{}, err
	}

	d, err := s.buildDraft(ctx, eid, monthStart)
	if err != nil {
		return SalaryRecordResponse{}, err
	}

	record := d.record.SalaryRecord
	record.ID = uuid.New()
	if actor, err := uuid.Parse(actorID); err == nil {
		record.ReleasedBy = &actor
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryRecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	released, err := qtx.Exists(ctx, eid, monthStart)
	if err != nil {
		return SalaryRecordResponse{}, err
	}
	if released {
		return SalaryRecordResponse{}, payrollerrors.ErrAlreadyReleased
	}

	if err := qtx.Create(ctx, &record); err != nil {
		return SalaryRecordResponse{}, mapUniqueViolation(err)
	}

	if s.outbox != nil {
		rid := contextutil.GetRequestID(ctx)
		event := events.SalaryReleasedEvent{
			EventType:      "salary_released",
			RequestID:      rid,
			SalaryRecordID: record.ID.String(),
			EmployeeID:     eid.String(),
			PayPeriodStart: monthStart.Format("2006-01-02"),
			NetPay:         record.NetPay,
			OccurredAt:     time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return SalaryRecordResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "salary_record",
			AggregateID:   record.ID.String(),
			EventType:     event.EventType,
			Topic:         events.SalaryReleasedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			return SalaryRecordResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return SalaryRecordResponse{}, err
	}

	s.logger.Info("salary released",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("salary_record_id", record.ID.String()),
		zap.String("employee_id", eid.String()),
		zap.String("pay_period_start", monthStart.Format("2006-01-02")),
		zap.Int64("net_pay", record.NetPay),
	)

	d.record.SalaryRecord = record
	return mapToResponse(d.record), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]SalaryRecordResponse, error) {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, payrollerrors.ErrInvalidEmployeeID
	}
	records, err := s.repo.FindByEmployee(ctx, eid)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(records), nil
}

func (s *service) GetAll(ctx context.Context) ([]SalaryRecordResponse, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(records), nil
}

func (s *service) QuarterSummary(ctx context.Context, quarter string, year int) (QuarterSummaryResponse, error) {
	from, to, err := s.quarterBounds(quarter, year)
	if err != nil {
		return QuarterSummaryResponse{}, err
	}

	records, err := s.repo.FindInRange(ctx, from, to)
	if err != nil {
		return QuarterSummaryResponse{}, err
	}

	summary := QuarterSummaryResponse{Quarter: strings.ToUpper(quarter), Year: year, Records: len(records)}
	for _, r := range records {
		summary.Gross += r.Gross
		summary.Bonus += r.Bonus
		summary.PF += r.PF
		summary.Penalty += r.Penalty
		summary.Tax += r.Tax
		summary.NetPay += r.NetPay
	}
	return summary, nil
}

func (s *service) QuarterTax(ctx context.Context, quarter string, year int, employeeID string) (QuarterTaxResponse, error) {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return QuarterTaxResponse{}, payrollerrors.ErrInvalidEmployeeID
	}
	from, to, err := s.quarterBounds(quarter, year)
	if err != nil {
		return QuarterTaxResponse{}, err
	}

	records, err := s.repo.FindInRangeByEmployee(ctx, eid, from, to)
	if err != nil {
		return QuarterTaxResponse{}, err
	}

	summary := QuarterTaxResponse{EmployeeID: employeeID, Quarter: strings.ToUpper(quarter), Year: year}
	for _, r := range records {
		summary.Gross += r.Gross
		summary.TaxDeducted += r.Tax
		summary.NetPay += r.NetPay
	}
	return summary, nil
}

// Payslip renders a released record as a PDF. A non-empty onlyFor restricts
// the lookup to that employee's own records.
func (s *service) Payslip(ctx context.Context, recordID, onlyFor string) ([]byte, error) {
	rid, err := uuid.Parse(recordID)
	if err != nil {
		return nil, payrollerrors.ErrSalaryRecordNotFound
	}

	record, err := s.repo.FindByID(ctx, rid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrSalaryRecordNotFound
		}
		return nil, err
	}
	if onlyFor != "" && record.EmployeeID.String() != onlyFor {
		return nil, payrollerrors.ErrSalaryRecordNotFound
	}

	lines := []string{
		fmt.Sprintf("Employee: %s", record.FullName),
		fmt.Sprintf("Designation: %s", record.DesignationName),
		fmt.Sprintf("Pay period: %s", record.PayPeriodStart.Format("January 2006")),
		fmt.Sprintf("Gross: %s", formatPaise(record.Gross)),
		fmt.Sprintf("Bonus: %s", formatPaise(record.Bonus)),
		fmt.Sprintf("Provident fund: -%s", formatPaise(record.PF)),
		fmt.Sprintf("Absence penalty: -%s", formatPaise(record.Penalty)),
		fmt.Sprintf("Tax: -%s", formatPaise(record.Tax)),
		fmt.Sprintf("Net pay: %s", formatPaise(record.NetPay)),
	}
	title := fmt.Sprintf("Payslip - %s", record.PayPeriodStart.Format("January 2006"))
	return buildPayslipPDF(title, lines)
}

// quarterBounds resolves a calendar-year quarter and rejects quarters that
// have not fully elapsed yet. Both the "Quarter 1" labels the clients send
// and the short Q1..Q4 form are accepted, case-insensitively.
func (s *service) quarterBounds(quarter string, year int) (time.Time, time.Time, error) {
	label := strings.ToUpper(strings.TrimSpace(quarter))
	label = strings.ReplaceAll(label, "QUARTER", "Q")
	label = strings.ReplaceAll(label, " ", "")

	var startMonth time.Month
	switch label {
	case "Q1":
		startMonth = time.January
	case "Q2":
		startMonth = time.April
	case "Q3":
		startMonth = time.July
	case "Q4":
		startMonth = time.October
	default:
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidQuarter
	}

	from := time.Date(year, startMonth, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 3, -1)

	now := s.now().UTC()
	if !now.After(to) {
		return time.Time{}, time.Time{}, payrollerrors.ErrQuarterNotElapsed
	}
	return from, to, nil
}

func parseMonth(month string) (time.Time, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, payrollerrors.ErrInvalidMonth
	}
	return start.UTC(), nil
}

func formatPaise(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%sRs %d.%02d", sign, v/100, v%100)
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return payrollerrors.ErrAlreadyReleased
	}
	if err != nil && strings.Contains(err.Error(), "duplicate key value") {
		return payrollerrors.ErrAlreadyReleased
	}
	return err
}
