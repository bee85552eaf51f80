package ctc_test

import (
	"context"
	"testing"
	"time"

	"go-payroll/internal/ctc"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// gormOverMock binds a gorm handle to a sqlmock connection so repository
// statements can be observed on the wire.
func gormOverMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

// The pool behind the gorm handle and the connection the service opens its
// transaction on are separate mocks, so every statement the update issues
// must show up on the transaction connection and none on the pool.
func TestCTCRepository_WithTx(t *testing.T) {
	gormDB, poolMock := gormOverMock(t)

	txDB, txMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { txDB.Close() })

	employeeID := uuid.New()
	now := time.Now()

	txMock.ExpectBegin()
	txMock.ExpectQuery(`SELECT \* FROM "ctcs" WHERE employee_id = \$1`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "employee_id", "cost_to_company", "created_at", "updated_at"}).
			AddRow(uuid.NewString(), employeeID.String(), int64(0), now, now))
	txMock.ExpectExec(`UPDATE "ctcs" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	txMock.ExpectCommit()

	svc := ctc.NewService(txDB, ctc.NewRepository(gormDB))
	resp, err := svc.Update(context.Background(), ctc.UpdateCTCRequest{
		EmployeeID:    employeeID.String(),
		CostToCompany: 700_000_00,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(700_000_00), resp.CostToCompany)
	assert.NoError(t, txMock.ExpectationsWereMet())
	assert.NoError(t, poolMock.ExpectationsWereMet())
}
