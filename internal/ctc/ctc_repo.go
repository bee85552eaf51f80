package ctc

import (
	"context"
	"database/sql"

	"go-payroll/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, record *CTC) error
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) (*CTC, error)
	Update(ctx context.Context, record *CTC) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository to the caller's transaction so its writes
// commit or roll back with the surrounding unit of work.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, record *CTC) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(record).Error
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) (*CTC, error) {
	var record CTC
	if err := r.db.WithContext(ctx).First(&record, "employee_id = ?", employeeID).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repository) Update(ctx context.Context, record *CTC) error {
	return r.db.WithContext(ctx).Save(record).Error
}
