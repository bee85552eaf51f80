package query

import (
	"context"
	"database/sql"
	"errors"

	"go-payroll/internal/payroll"
	queryerrors "go-payroll/internal/query/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Add(ctx context.Context, employeeID string, req CreateQueryRequest) (QueryResponse, error)
	Respond(ctx context.Context, responderID string, req RespondToQueryRequest) (QueryResponse, error)
	ListForEmployee(ctx context.Context, employeeID string) ([]QueryResponse, error)
	ListAll(ctx context.Context) ([]QueryResponse, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	payrollRepo payroll.Repository
	logger      *zap.Logger
}

func NewService(db *sql.DB, repo Repository, payrollRepo payroll.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("query.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("query.service")
	}
	return &service{db: db, repo: repo, payrollRepo: payrollRepo, logger: l}
}

// Add opens a query against one of the caller's own released salary records.
func (s *service) Add(ctx context.Context, employeeID string, req CreateQueryRequest) (QueryResponse, error) {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return QueryResponse{}, queryerrors.ErrInvalidEmployeeID
	}
	rid, err := uuid.Parse(req.SalaryRecordID)
	if err != nil {
		return QueryResponse{}, queryerrors.ErrSalaryRecordNotFound
	}

	record, err := s.payrollRepo.FindByID(ctx, rid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return QueryResponse{}, queryerrors.ErrSalaryRecordNotFound
		}
		return QueryResponse{}, err
	}
	if record.EmployeeID != eid {
		return QueryResponse{}, queryerrors.ErrNotRecordOwner
	}

	q := &Query{
		ID:             uuid.New(),
		EmployeeID:     eid,
		SalaryRecordID: rid,
		Description:    req.Description,
		Status:         StatusOpen,
		Comment:        defaultComment,
	}
	if err := s.repo.Create(ctx, q); err != nil {
		return QueryResponse{}, err
	}

	s.logger.Info("query opened",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("query_id", q.ID.String()),
		zap.String("employee_id", employeeID),
	)
	return mapToResponse(QueryWithNames{Query: *q, PayPeriodStart: record.PayPeriodStart}), nil
}

// Respond moves a query to In Progress or Resolved. Resolved queries are
// immutable.
func (s *service) Respond(ctx context.Context, responderID string, req RespondToQueryRequest) (QueryResponse, error) {
	qid, err := uuid.Parse(req.QueryID)
	if err != nil {
		return QueryResponse{}, queryerrors.ErrQueryNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return QueryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	q, err := qtx.FindByID(ctx, qid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return QueryResponse{}, queryerrors.ErrQueryNotFound
		}
		return QueryResponse{}, err
	}
	if q.Status == StatusResolved {
		return QueryResponse{}, queryerrors.ErrQueryResolved
	}

	q.Status = req.Status
	if req.Comment != "" {
		q.Comment = req.Comment
	}
	if responder, err := uuid.Parse(responderID); err == nil {
		q.RespondedBy = &responder
	}
	if err := qtx.Update(ctx, q); err != nil {
		return QueryResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return QueryResponse{}, err
	}

	s.logger.Info("query responded",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("query_id", q.ID.String()),
		zap.String("status", q.Status),
	)
	return mapToResponse(QueryWithNames{Query: *q}), nil
}

func (s *service) ListForEmployee(ctx context.Context, employeeID string) ([]QueryResponse, error) {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, queryerrors.ErrInvalidEmployeeID
	}
	queries, err := s.repo.FindByEmployee(ctx, eid)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(queries), nil
}

func (s *service) ListAll(ctx context.Context) ([]QueryResponse, error) {
	queries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(queries), nil
}
