package leavetype

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	leavetypeerrors "go-payroll/internal/leavetype/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	GetAll(ctx context.Context) ([]LeaveTypeResponse, error)
	Update(ctx context.Context, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error) {
	if req.NumberOfLeaves <= 0 {
		return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidAllotment
	}

	leaveType := &LeaveType{
		ID:             uuid.New(),
		Name:           req.Name,
		NumberOfLeaves: req.NumberOfLeaves,
	}

	if err := s.repo.Create(ctx, leaveType); err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*leaveType), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveTypeResponse, error) {
	types, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(types), nil
}

func (s *service) Update(ctx context.Context, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error) {
	if req.NumberOfLeaves <= 0 {
		return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidAllotment
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveTypeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := uuid.Parse(req.ID); err != nil {
		return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidLeaveTypeID
	}

	leaveType, err := qtx.FindByID(ctx, req.ID)
	if err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	leaveType.Name = req.Name
	leaveType.NumberOfLeaves = req.NumberOfLeaves

	if err := qtx.Update(ctx, leaveType); err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return LeaveTypeResponse{}, err
	}

	return mapToResponse(*leaveType), nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leavetypeerrors.ErrLeaveTypeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_leave_type_name" {
			return leavetypeerrors.ErrLeaveTypeAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_leave_type_name") {
		return leavetypeerrors.ErrLeaveTypeAlreadyExists
	}

	return err
}
