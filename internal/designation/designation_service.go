package designation

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	designationerrors "go-payroll/internal/designation/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	designationsCacheKey = "designations:all"
	designationsCacheTTL = 30 * time.Minute
)

type Service interface {
	Create(ctx context.Context, req CreateDesignationRequest) (DesignationResponse, error)
	GetAll(ctx context.Context) ([]DesignationResponse, error)
	Update(ctx context.Context, req UpdateDesignationRequest) (DesignationResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("designation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("designation.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateDesignationRequest) (DesignationResponse, error) {
	designation := &Designation{
		ID:   uuid.New(),
		Name: req.Name,
	}

	if err := s.repo.Create(ctx, designation); err != nil {
		return DesignationResponse{}, mapRepositoryError(err)
	}

	s.invalidateCache(ctx)
	return mapToResponse(*designation), nil
}

func (s *service) GetAll(ctx context.Context) ([]DesignationResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, designationsCacheKey).Result()
		if err == nil {
			var resp []DesignationResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	designations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := mapToListResponse(designations)

	if s.rdb != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, designationsCacheKey, payload, designationsCacheTTL).Err(); err != nil {
				s.logger.Warn("cache designations failed", zap.Error(err))
			}
		}
	}

	return resp, nil
}

func (s *service) Update(ctx context.Context, req UpdateDesignationRequest) (DesignationResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DesignationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := uuid.Parse(req.ID); err != nil {
		return DesignationResponse{}, designationerrors.ErrInvalidDesignationID
	}

	designation, err := qtx.FindByID(ctx, req.ID)
	if err != nil {
		return DesignationResponse{}, mapRepositoryError(err)
	}

	designation.Name = req.Name
	if err := qtx.Update(ctx, designation); err != nil {
		return DesignationResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return DesignationResponse{}, err
	}

	s.invalidateCache(ctx)
	return mapToResponse(*designation), nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, designationsCacheKey).Err(); err != nil {
		s.logger.Warn("invalidate designations cache failed", zap.Error(err))
	}
}
