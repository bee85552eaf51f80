package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-payroll/internal/auth"
	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	createFn         func(ctx context.Context, e *employee.Employee) error
	findAllFn        func(ctx context.Context) ([]employee.EmployeeWithNames, error)
	findByIDFn       func(ctx context.Context, id string) (*employee.EmployeeWithNames, error)
	findEntityByIDFn func(ctx context.Context, id string) (*employee.Employee, error)
	updateFn         func(ctx context.Context, e *employee.Employee) error
	findManagersFn   func(ctx context.Context) ([]employee.EmployeeWithNames, error)
	findTeamFn       func(ctx context.Context, managerID string) ([]employee.EmployeeWithNames, error)
	roleNameFn       func(ctx context.Context, roleID string) (string, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindAll(ctx context.Context) ([]employee.EmployeeWithNames, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.EmployeeWithNames, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindEntityByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findEntityByIDFn != nil {
		return f.findEntityByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindManagers(ctx context.Context) ([]employee.EmployeeWithNames, error) {
	if f.findManagersFn != nil {
		return f.findManagersFn(ctx)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindTeam(ctx context.Context, managerID string) ([]employee.EmployeeWithNames, error) {
	if f.findTeamFn != nil {
		return f.findTeamFn(ctx, managerID)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) RoleName(ctx context.Context, roleID string) (string, error) {
	if f.roleNameFn != nil {
		return f.roleNameFn(ctx, roleID)
	}
	return "", nil
}

type fakeUserRepository struct {
	createFn func(ctx context.Context, user *auth.User) error
}

func (f *fakeUserRepository) WithTx(tx *sql.Tx) auth.Repository { return f }

func (f *fakeUserRepository) Create(ctx context.Context, user *auth.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	return nil
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hashed string) error {
	return nil
}

func (f *fakeUserRepository) UpdateRole(ctx context.Context, email, role string) (int64, error) {
	return 0, nil
}

func (f *fakeUserRepository) EmployeeFullName(ctx context.Context, employeeID uuid.UUID) (string, error) {
	return "", nil
}

func (f *fakeUserRepository) CreateLoginLog(ctx context.Context, log *auth.LoginLog) error {
	return nil
}

func (f *fakeUserRepository) GetLoginLog(ctx context.Context, id uuid.UUID) (*auth.LoginLog, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) CloseLoginLog(ctx context.Context, id uuid.UUID, at time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeUserRepository) ListLoginLogs(ctx context.Context, limit int) ([]auth.LoginLogWithName, error) {
	return nil, nil
}

type fakeOutboxRepository struct {
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *fakeEmployeeRepository
	users   *fakeUserRepository
	outbox  *fakeOutboxRepository
	service employee.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := &fakeEmployeeRepository{}
	users := &fakeUserRepository{}
	outbox := &fakeOutboxRepository{}

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		repo:    repo,
		users:   users,
		outbox:  outbox,
		service: employee.NewService(db, repo, users, outbox, nil),
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FullName:      "Jane Doe",
		Email:         "jane@example.com",
		MobileNumber:  "9876543210",
		DateOfBirth:   "1995-06-15",
		JoiningDate:   "2024-01-08",
		DesignationID: uuid.NewString(),
		RoleID:        uuid.NewString(),
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("registers employee, account, and outbox event in one tx", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.roleNameFn = func(ctx context.Context, roleID string) (string, error) {
			return "Employee", nil
		}

		var created *employee.Employee
		deps.repo.createFn = func(ctx context.Context, e *employee.Employee) error {
			created = e
			return nil
		}
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.EmployeeWithNames, error) {
			return &employee.EmployeeWithNames{Employee: *created, RoleName: "Employee"}, nil
		}

		var createdUser *auth.User
		deps.users.createFn = func(ctx context.Context, user *auth.User) error {
			createdUser = user
			return nil
		}

		var outboxEvent kafka.OutboxEvent
		deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
			outboxEvent = event
			return nil
		}

		resp, err := deps.service.Create(ctx, validCreateRequest())
		assert.NoError(t, err)
		assert.Equal(t, "Jane Doe", resp.FullName)

		if assert.NotNil(t, createdUser) {
			assert.Equal(t, "jane@example.com", createdUser.Email)
			assert.Equal(t, "Employee", createdUser.Role)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(createdUser.Password), []byte("Welcome@123")))
		}

		assert.Equal(t, events.EmployeeCreatedTopic, outboxEvent.Topic)
		assert.Equal(t, kafka.OutboxStatusPending, outboxEvent.Status)
		var event events.EmployeeCreatedEvent
		assert.NoError(t, json.Unmarshal(outboxEvent.Payload, &event))
		assert.Equal(t, created.ID.String(), event.EmployeeID)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("bad joining date", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := validCreateRequest()
		req.JoiningDate = "08-01-2024"

		_, err := deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidDateFormat)
	})

	t.Run("unknown role", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.roleNameFn = func(ctx context.Context, roleID string) (string, error) {
			return "", nil
		}

		_, err := deps.service.Create(ctx, validCreateRequest())
		assert.ErrorIs(t, err, employeeerrors.ErrRoleNotFound)
	})

	t.Run("unknown manager", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.roleNameFn = func(ctx context.Context, roleID string) (string, error) {
			return "Employee", nil
		}

		req := validCreateRequest()
		req.ManagerID = uuid.NewString()

		_, err := deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, employeeerrors.ErrManagerNotFound)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	existing := func() *employee.Employee {
		return &employee.Employee{
			ID:           uuid.New(),
			FullName:     "Jane Doe",
			Email:        "jane@example.com",
			MobileNumber: "9876543210",
			IsActive:     true,
		}
	}

	t.Run("deactivates via string flag", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		empl := existing()
		deps.repo.findEntityByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return empl, nil
		}
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.EmployeeWithNames, error) {
			return &employee.EmployeeWithNames{Employee: *empl}, nil
		}

		var saved *employee.Employee
		deps.repo.updateFn = func(ctx context.Context, e *employee.Employee) error {
			saved = e
			return nil
		}

		resp, err := deps.service.Update(ctx, employee.UpdateEmployeeRequest{
			ID:       empl.ID.String(),
			IsActive: "false",
		})
		assert.NoError(t, err)
		assert.False(t, resp.IsActive)
		if assert.NotNil(t, saved) {
			assert.False(t, saved.IsActive)
		}
	})

	t.Run("rejects junk active flag", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		empl := existing()
		deps.repo.findEntityByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return empl, nil
		}

		_, err := deps.service.Update(ctx, employee.UpdateEmployeeRequest{
			ID:       empl.ID.String(),
			IsActive: "maybe",
		})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidActiveFlag)
	})
}

func TestEmployeeService_UpdateRating(t *testing.T) {
	ctx := context.Background()
	managerID := uuid.New()

	reportOf := func(mid uuid.UUID) *employee.Employee {
		return &employee.Employee{
			ID:        uuid.New(),
			FullName:  "Direct Report",
			ManagerID: &mid,
		}
	}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		empl := reportOf(managerID)
		deps.repo.findEntityByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return empl, nil
		}
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.EmployeeWithNames, error) {
			return &employee.EmployeeWithNames{Employee: *empl}, nil
		}

		resp, err := deps.service.UpdateRating(ctx, managerID.String(), employee.UpdateRatingRequest{
			EmployeeID: empl.ID.String(),
			Rating:     4,
		})
		assert.NoError(t, err)
		if assert.NotNil(t, resp.Rating) {
			assert.Equal(t, 4, *resp.Rating)
		}
	})

	t.Run("rating out of range", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.UpdateRating(ctx, managerID.String(), employee.UpdateRatingRequest{
			EmployeeID: uuid.NewString(),
			Rating:     6,
		})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidRating)
	})

	t.Run("not a direct report", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		other := uuid.New()
		empl := reportOf(other)
		deps.repo.findEntityByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return empl, nil
		}

		_, err := deps.service.UpdateRating(ctx, managerID.String(), employee.UpdateRatingRequest{
			EmployeeID: empl.ID.String(),
			Rating:     3,
		})
		assert.ErrorIs(t, err, employeeerrors.ErrNotAManagedEmployee)
	})

	t.Run("already rated this year", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		empl := reportOf(managerID)
		ratedAt := time.Now().UTC()
		three := 3
		empl.Rating = &three
		empl.RatedAt = &ratedAt

		deps.repo.findEntityByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return empl, nil
		}

		_, err := deps.service.UpdateRating(ctx, managerID.String(), employee.UpdateRatingRequest{
			EmployeeID: empl.ID.String(),
			Rating:     5,
		})
		assert.ErrorIs(t, err, employeeerrors.ErrAlreadyRatedThisYear)
	})

	t.Run("rated last year is fine", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		empl := reportOf(managerID)
		lastYear := time.Now().UTC().AddDate(-1, 0, 0)
		two := 2
		empl.Rating = &two
		empl.RatedAt = &lastYear

		deps.repo.findEntityByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return empl, nil
		}
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.EmployeeWithNames, error) {
			return &employee.EmployeeWithNames{Employee: *empl}, nil
		}

		_, err := deps.service.UpdateRating(ctx, managerID.String(), employee.UpdateRatingRequest{
			EmployeeID: empl.ID.String(),
			Rating:     5,
		})
		assert.NoError(t, err)
	})
}
