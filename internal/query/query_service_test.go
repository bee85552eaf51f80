package query_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-payroll/internal/payroll"
	"go-payroll/internal/query"
	queryerrors "go-payroll/internal/query/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeQueryRepository struct {
	createFn         func(ctx context.Context, q *query.Query) error
	findByIDFn       func(ctx context.Context, id uuid.UUID) (*query.Query, error)
	findByEmployeeFn func(ctx context.Context, employeeID uuid.UUID) ([]query.QueryWithNames, error)
	findAllFn        func(ctx context.Context) ([]query.QueryWithNames, error)
	updateFn         func(ctx context.Context, q *query.Query) error
}

func (f *fakeQueryRepository) WithTx(tx *sql.Tx) query.Repository { return f }

func (f *fakeQueryRepository) Create(ctx context.Context, q *query.Query) error {
	if f.createFn != nil {
		return f.createFn(ctx, q)
	}
	return nil
}

func (f *fakeQueryRepository) FindByID(ctx context.Context, id uuid.UUID) (*query.Query, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeQueryRepository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]query.QueryWithNames, error) {
	if f.findByEmployeeFn != nil {
		return f.findByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeQueryRepository) FindAll(ctx context.Context) ([]query.QueryWithNames, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeQueryRepository) Update(ctx context.Context, q *query.Query) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, q)
	}
	return nil
}

type fakeSalaryRecordFinder struct {
	payroll.Repository
	findByIDFn func(ctx context.Context, id uuid.UUID) (*payroll.SalaryRecordWithEmployee, error)
}

func (f *fakeSalaryRecordFinder) WithTx(tx *sql.Tx) payroll.Repository { return f }

func (f *fakeSalaryRecordFinder) FindByID(ctx context.Context, id uuid.UUID) (*payroll.SalaryRecordWithEmployee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *fakeQueryRepository
	records *fakeSalaryRecordFinder
	service query.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := &fakeQueryRepository{}
	records := &fakeSalaryRecordFinder{}

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		repo:    repo,
		records: records,
		service: query.NewService(db, repo, records),
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

func ownRecord(employeeID uuid.UUID) *payroll.SalaryRecordWithEmployee {
	return &payroll.SalaryRecordWithEmployee{
		SalaryRecord: payroll.SalaryRecord{
			ID:             uuid.New(),
			EmployeeID:     employeeID,
			PayPeriodStart: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestQueryService_Add(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("opens with status Open and the default comment", func(t *testing.T) {
		deps := setupServiceTest(t)
		record := ownRecord(employeeID)
		deps.records.findByIDFn = func(ctx context.Context, id uuid.UUID) (*payroll.SalaryRecordWithEmployee, error) {
			return record, nil
		}

		var created *query.Query
		deps.repo.createFn = func(ctx context.Context, q *query.Query) error {
			created = q
			return nil
		}

		resp, err := deps.service.Add(ctx, employeeID.String(), query.CreateQueryRequest{
			SalaryRecordID: record.ID.String(),
			Description:    "Net pay lower than expected",
		})

		assert.NoError(t, err)
		assert.Equal(t, query.StatusOpen, created.Status)
		assert.Equal(t, "No comment.", created.Comment)
		assert.Equal(t, query.StatusOpen, resp.Status)
		assert.Equal(t, "2026-03-01", resp.PayPeriodStart)
	})

	t.Run("unknown salary record", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Add(ctx, employeeID.String(), query.CreateQueryRequest{
			SalaryRecordID: uuid.NewString(),
			Description:    "Net pay lower than expected",
		})
		assert.ErrorIs(t, err, queryerrors.ErrSalaryRecordNotFound)
	})

	t.Run("someone else's salary record", func(t *testing.T) {
		deps := setupServiceTest(t)
		record := ownRecord(uuid.New())
		deps.records.findByIDFn = func(ctx context.Context, id uuid.UUID) (*payroll.SalaryRecordWithEmployee, error) {
			return record, nil
		}

		_, err := deps.service.Add(ctx, employeeID.String(), query.CreateQueryRequest{
			SalaryRecordID: record.ID.String(),
			Description:    "Net pay lower than expected",
		})
		assert.ErrorIs(t, err, queryerrors.ErrNotRecordOwner)
	})
}

func TestQueryService_Respond(t *testing.T) {
	ctx := context.Background()
	responderID := uuid.NewString()

	openQuery := func() *query.Query {
		return &query.Query{
			ID:          uuid.New(),
			EmployeeID:  uuid.New(),
			Status:      query.StatusOpen,
			Comment:     "No comment.",
			Description: "Net pay lower than expected",
		}
	}

	t.Run("moves to in progress with a comment", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		q := openQuery()
		deps.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*query.Query, error) {
			return q, nil
		}
		var saved *query.Query
		deps.repo.updateFn = func(ctx context.Context, q *query.Query) error {
			saved = q
			return nil
		}

		resp, err := deps.service.Respond(ctx, responderID, query.RespondToQueryRequest{
			QueryID: q.ID.String(),
			Status:  query.StatusInProgress,
			Comment: "Checking with finance",
		})

		assert.NoError(t, err)
		assert.Equal(t, query.StatusInProgress, saved.Status)
		assert.Equal(t, "Checking with finance", saved.Comment)
		assert.Equal(t, query.StatusInProgress, resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("resolving keeps the previous comment when none is given", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		q := openQuery()
		q.Status = query.StatusInProgress
		q.Comment = "Checking with finance"
		deps.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*query.Query, error) {
			return q, nil
		}
		var saved *query.Query
		deps.repo.updateFn = func(ctx context.Context, q *query.Query) error {
			saved = q
			return nil
		}

		_, err := deps.service.Respond(ctx, responderID, query.RespondToQueryRequest{
			QueryID: q.ID.String(),
			Status:  query.StatusResolved,
		})

		assert.NoError(t, err)
		assert.Equal(t, query.StatusResolved, saved.Status)
		assert.Equal(t, "Checking with finance", saved.Comment)
	})

	t.Run("resolved is terminal", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		q := openQuery()
		q.Status = query.StatusResolved
		deps.repo.findByIDFn = func(ctx context.Context, id uuid.UUID) (*query.Query, error) {
			return q, nil
		}

		_, err := deps.service.Respond(ctx, responderID, query.RespondToQueryRequest{
			QueryID: q.ID.String(),
			Status:  query.StatusInProgress,
		})
		assert.ErrorIs(t, err, queryerrors.ErrQueryResolved)
	})

	t.Run("unknown query", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Respond(ctx, responderID, query.RespondToQueryRequest{
			QueryID: uuid.NewString(),
			Status:  query.StatusResolved,
		})
		assert.ErrorIs(t, err, queryerrors.ErrQueryNotFound)
	})
}
