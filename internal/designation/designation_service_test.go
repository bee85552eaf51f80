package designation_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-payroll/internal/designation"
	designationerrors "go-payroll/internal/designation/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

type fakeDesignationRepository struct {
	createFn   func(ctx context.Context, d *designation.Designation) error
	findAllFn  func(ctx context.Context) ([]designation.Designation, error)
	findByIDFn func(ctx context.Context, id string) (*designation.Designation, error)
	updateFn   func(ctx context.Context, d *designation.Designation) error
}

func (f *fakeDesignationRepository) WithTx(tx *sql.Tx) designation.Repository { return f }

func (f *fakeDesignationRepository) Create(ctx context.Context, d *designation.Designation) error {
	if f.createFn != nil {
		return f.createFn(ctx, d)
	}
	return nil
}

func (f *fakeDesignationRepository) FindAll(ctx context.Context) ([]designation.Designation, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeDesignationRepository) FindByID(ctx context.Context, id string) (*designation.Designation, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, sql.ErrNoRows
}

func (f *fakeDesignationRepository) Update(ctx context.Context, d *designation.Designation) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, d)
	}
	return nil
}

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	repo      *fakeDesignationRepository
	service   designation.Service
	redisMock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, redisMock := redismock.NewClientMock()
	repo := &fakeDesignationRepository{}

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		repo:      repo,
		service:   designation.NewService(db, repo, rdb),
		redisMock: redisMock,
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

func TestDesignationService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips repository", func(t *testing.T) {
		deps := setupServiceTest(t)

		expected := []designation.DesignationResponse{
			{ID: uuid.NewString(), Name: "Software Engineer"},
			{ID: uuid.NewString(), Name: "Team Lead"},
		}
		payload, _ := json.Marshal(expected)
		deps.redisMock.ExpectGet("designations:all").SetVal(string(payload))

		deps.repo.findAllFn = func(ctx context.Context) ([]designation.Designation, error) {
			t.Fatal("repository must not be hit on cache hit")
			return nil, nil
		}

		resp, err := deps.service.GetAll(ctx)
		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
	})

	t.Run("cache miss reads db and fills cache", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redisMock.ExpectGet("designations:all").RedisNil()

		rows := []designation.Designation{{ID: uuid.New(), Name: "Analyst"}}
		deps.repo.findAllFn = func(ctx context.Context) ([]designation.Designation, error) {
			return rows, nil
		}

		expected := []designation.DesignationResponse{{ID: rows[0].ID.String(), Name: "Analyst"}}
		payload, _ := json.Marshal(expected)
		deps.redisMock.ExpectSet("designations:all", payload, 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetAll(ctx)
		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})
}

func TestDesignationService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redisMock.ExpectDel("designations:all").SetVal(1)

		deps.repo.createFn = func(ctx context.Context, d *designation.Designation) error {
			assert.Equal(t, "QA Engineer", d.Name)
			return nil
		}

		resp, err := deps.service.Create(ctx, designation.CreateDesignationRequest{Name: "QA Engineer"})
		assert.NoError(t, err)
		assert.Equal(t, "QA Engineer", resp.Name)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("duplicate name maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.createFn = func(ctx context.Context, d *designation.Designation) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_designation_name"}
		}

		_, err := deps.service.Create(ctx, designation.CreateDesignationRequest{Name: "QA Engineer"})
		assert.ErrorIs(t, err, designationerrors.ErrDesignationAlreadyExists)
	})
}

func TestDesignationService_Update(t *testing.T) {
	ctx := context.Background()
	existing := &designation.Designation{ID: uuid.New(), Name: "Old Name"}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		deps.redisMock.ExpectDel("designations:all").SetVal(1)

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*designation.Designation, error) {
			return existing, nil
		}

		var saved *designation.Designation
		deps.repo.updateFn = func(ctx context.Context, d *designation.Designation) error {
			saved = d
			return nil
		}

		resp, err := deps.service.Update(ctx, designation.UpdateDesignationRequest{
			ID:   existing.ID.String(),
			Name: "New Name",
		})
		assert.NoError(t, err)
		assert.Equal(t, "New Name", resp.Name)
		if assert.NotNil(t, saved) {
			assert.Equal(t, "New Name", saved.Name)
		}
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("malformed id", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Update(ctx, designation.UpdateDesignationRequest{
			ID:   "nope",
			Name: "New Name",
		})
		assert.ErrorIs(t, err, designationerrors.ErrInvalidDesignationID)
	})
}
