package role

import (
	"context"
	"database/sql"

	roleerrors "go-payroll/internal/role/errors"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error)
	GetAll(ctx context.Context) ([]RoleResponse, error)
	Update(ctx context.Context, req UpdateRoleRequest) (RoleResponse, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error) {
	role := &Role{
		ID:   uuid.New(),
		Name: req.Name,
	}

	if err := s.repo.Create(ctx, role); err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*role), nil
}

func (s *service) GetAll(ctx context.Context) ([]RoleResponse, error) {
	roles, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(roles), nil
}

func (s *service) Update(ctx context.Context, req UpdateRoleRequest) (RoleResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RoleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := uuid.Parse(req.ID); err != nil {
		return RoleResponse{}, roleerrors.ErrInvalidRoleID
	}

	role, err := qtx.FindByID(ctx, req.ID)
	if err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}

	role.Name = req.Name
	if err := qtx.Update(ctx, role); err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return RoleResponse{}, err
	}

	return mapToResponse(*role), nil
}
