package query

import (
	"context"
	"database/sql"
	"time"

	"go-payroll/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QueryWithNames struct {
	Query
	EmployeeName   string    `gorm:"column:employee_name"`
	PayPeriodStart time.Time `gorm:"column:pay_period_start"`
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, q *Query) error
	FindByID(ctx context.Context, id uuid.UUID) (*Query, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]QueryWithNames, error)
	FindAll(ctx context.Context) ([]QueryWithNames, error)
	Update(ctx context.Context, q *Query) error
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

func (r *repository) Create(ctx context.Context, q *Query) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Query, error) {
	var q Query
	if err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *repository) withNames(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&Query{}).
		Select("queries.*, employees.full_name AS employee_name, salary_records.pay_period_start").
		Joins("LEFT JOIN employees ON employees.id = queries.employee_id").
		Joins("LEFT JOIN salary_records ON salary_records.id = queries.salary_record_id")
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]QueryWithNames, error) {
	var queries []QueryWithNames
	err := r.withNames(ctx).
		Where("queries.employee_id = ?", employeeID).
		Order("queries.created_at DESC").
		Scan(&queries).Error
	return queries, err
}

func (r *repository) FindAll(ctx context.Context) ([]QueryWithNames, error) {
	var queries []QueryWithNames
	err := r.withNames(ctx).
		Order("queries.created_at DESC").
		Scan(&queries).Error
	return queries, err
}

func (r *repository) Update(ctx context.Context, q *Query) error {
	return r.db.WithContext(ctx).Save(q).Error
}
