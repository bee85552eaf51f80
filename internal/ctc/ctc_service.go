package ctc

import (
	"context"
	"database/sql"
	"errors"

	ctcerrors "go-payroll/internal/ctc/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	GetByEmployee(ctx context.Context, employeeID string) (CTCResponse, error)
	Update(ctx context.Context, req UpdateCTCRequest) (CTCResponse, error)
	ProvisionEmployee(ctx context.Context, employeeID string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("ctc.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ctc.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) (CTCResponse, error) {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return CTCResponse{}, ctcerrors.ErrInvalidEmployeeID
	}

	record, err := s.repo.FindByEmployee(ctx, eid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CTCResponse{}, ctcerrors.ErrCTCNotFound
		}
		return CTCResponse{}, err
	}
	return mapToResponse(*record), nil
}

func (s *service) Update(ctx context.Context, req UpdateCTCRequest) (CTCResponse, error) {
	eid, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return CTCResponse{}, ctcerrors.ErrInvalidEmployeeID
	}
	if req.CostToCompany < MinCTC || req.CostToCompany > MaxCTC {
		return CTCResponse{}, ctcerrors.ErrCTCOutOfRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CTCResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByEmployee(ctx, eid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CTCResponse{}, ctcerrors.ErrCTCNotFound
		}
		return CTCResponse{}, err
	}

	record.CostToCompany = req.CostToCompany
	if err := qtx.Update(ctx, record); err != nil {
		return CTCResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return CTCResponse{}, err
	}

	s.logger.Info("ctc updated",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("employee_id", req.EmployeeID),
		zap.Int64("cost_to_company", req.CostToCompany),
	)
	return mapToResponse(*record), nil
}

// ProvisionEmployee creates the zero placeholder row for a newly registered
// employee. The create tolerates replays from the lifecycle consumer.
func (s *service) ProvisionEmployee(ctx context.Context, employeeID string) error {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return ctcerrors.ErrInvalidEmployeeID
	}

	record := &CTC{
		ID:            uuid.New(),
		EmployeeID:    eid,
		CostToCompany: 0,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return err
	}

	s.logger.Info("ctc row provisioned", zap.String("employee_id", employeeID))
	return nil
}
