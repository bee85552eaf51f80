package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"time"

	"go-payroll/internal/auth"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
)

const (
	ManagerOptionsKey = "employees:managers"

	// Accounts start with this password until the employee changes it.
	defaultPassword = "Welcome@123"
)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	GetManagers(ctx context.Context) ([]EmployeeResponse, error)
	GetTeam(ctx context.Context, managerID string) ([]EmployeeResponse, error)
	UpdateRating(ctx context.Context, managerID string, req UpdateRatingRequest) (EmployeeResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	userRepo auth.Repository
	outbox   kafka.OutboxRepository
	rdb      *redis.Client
	sf       *singleflight.Group
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	userRepo auth.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		userRepo: userRepo,
		outbox:   outboxRepo,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("register employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	dateOfBirth, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateFormat
	}
	joiningDate, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateFormat
	}

	roleName, err := s.repo.RoleName(ctx, req.RoleID)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if roleName == "" {
		return EmployeeResponse{}, employeeerrors.ErrRoleNotFound
	}

	var managerID *uuid.UUID
	if req.ManagerID != "" {
		mid, err := uuid.Parse(req.ManagerID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidManagerID
		}
		if _, err := s.repo.FindEntityByID(ctx, req.ManagerID); err != nil {
			return EmployeeResponse{}, employeeerrors.ErrManagerNotFound
		}
		managerID = &mid
	}

	password := req.Password
	if password == "" {
		password = defaultPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return EmployeeResponse{}, err
	}

	designationID := uuid.MustParse(req.DesignationID)
	roleID := uuid.MustParse(req.RoleID)

	empl := &Employee{
		ID:            uuid.New(),
		FullName:      req.FullName,
		Email:         req.Email,
		MobileNumber:  req.MobileNumber,
		DateOfBirth:   dateOfBirth,
		JoiningDate:   joiningDate,
		DesignationID: &designationID,
		ManagerID:     managerID,
		RoleID:        &roleID,
		IsActive:      true,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, empl); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	user := &auth.User{
		ID:         uuid.New(),
		EmployeeID: &empl.ID,
		Email:      req.Email,
		Password:   string(hashed),
		Role:       roleName,
		IsActive:   true,
	}
	if err := s.userRepo.WithTx(tx).Create(ctx, user); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			RequestID:  rid,
			EmployeeID: empl.ID.String(),
			FullName:   empl.FullName,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return EmployeeResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("register employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateManagerOptions(ctx)
	s.logger.Info("register employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return s.GetByID(ctx, empl.ID.String())
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(employees), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindEntityByID(ctx, req.ID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.MobileNumber != "" {
		empl.MobileNumber = req.MobileNumber
	}
	if req.DesignationID != "" {
		did := uuid.MustParse(req.DesignationID)
		empl.DesignationID = &did
	}
	if req.ManagerID != "" {
		mid, err := uuid.Parse(req.ManagerID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidManagerID
		}
		if _, err := qtx.FindEntityByID(ctx, req.ManagerID); err != nil {
			return EmployeeResponse{}, employeeerrors.ErrManagerNotFound
		}
		empl.ManagerID = &mid
	}
	if req.IsActive != "" {
		active, err := strconv.ParseBool(req.IsActive)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidActiveFlag
		}
		empl.IsActive = active
	}

	if err := qtx.Update(ctx, empl); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateManagerOptions(ctx)
	return s.GetByID(ctx, req.ID)
}

// GetManagers backs the manager dropdown on the registration form. The list
// changes rarely, so it is cached and guarded by singleflight against a
// stampede when several admins open the form at once.
func (s *service) GetManagers(ctx context.Context) ([]EmployeeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, ManagerOptionsKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(ManagerOptionsKey, func() (interface{}, error) {
		managers, err := s.repo.FindManagers(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(managers)
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, ManagerOptionsKey, jsonData, 1*time.Hour)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetTeam(ctx context.Context, managerID string) ([]EmployeeResponse, error) {
	if _, err := uuid.Parse(managerID); err != nil {
		return nil, employeeerrors.ErrInvalidManagerID
	}

	team, err := s.repo.FindTeam(ctx, managerID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(team), nil
}

func (s *service) UpdateRating(ctx context.Context, managerID string, req UpdateRatingRequest) (EmployeeResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return EmployeeResponse{}, employeeerrors.ErrInvalidRating
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindEntityByID(ctx, req.EmployeeID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if empl.ManagerID == nil || empl.ManagerID.String() != managerID {
		return EmployeeResponse{}, employeeerrors.ErrNotAManagedEmployee
	}

	now := time.Now().UTC()
	if empl.RatedAt != nil && empl.RatedAt.Year() == now.Year() {
		return EmployeeResponse{}, employeeerrors.ErrAlreadyRatedThisYear
	}

	rating := req.Rating
	empl.Rating = &rating
	empl.RatedAt = &now

	if err := qtx.Update(ctx, empl); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("rating updated",
		zap.String("employee_id", req.EmployeeID),
		zap.Int("rating", req.Rating),
	)
	return s.GetByID(ctx, req.EmployeeID)
}

func (s *service) invalidateManagerOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, ManagerOptionsKey).Err(); err != nil {
		s.logger.Warn("invalidate manager options cache failed", zap.Error(err))
	}
}
