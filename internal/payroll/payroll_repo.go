package payroll

import (
	"context"
	"database/sql"
	"time"

	"go-payroll/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SalaryRecordWithEmployee struct {
	SalaryRecord
	FullName        string    `gorm:"column:full_name"`
	JoiningDate     time.Time `gorm:"column:joining_date"`
	DesignationName string    `gorm:"column:designation_name"`
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, record *SalaryRecord) error
	Exists(ctx context.Context, employeeID uuid.UUID, periodStart time.Time) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*SalaryRecordWithEmployee, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]SalaryRecordWithEmployee, error)
	FindAll(ctx context.Context) ([]SalaryRecordWithEmployee, error)
	FindInRange(ctx context.Context, from, to time.Time) ([]SalaryRecord, error)
	FindInRangeByEmployee(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]SalaryRecord, error)
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

func (r *repository) Create(ctx context.Context, record *SalaryRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) Exists(ctx context.Context, employeeID uuid.UUID, periodStart time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&SalaryRecord{}).
		Where("employee_id = ? AND pay_period_start = ?", employeeID, periodStart).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) withEmployee(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&SalaryRecord{}).
		Select("salary_records.*, employees.full_name, employees.joining_date, designations.name AS designation_name").
		Joins("LEFT JOIN employees ON employees.id = salary_records.employee_id").
		Joins("LEFT JOIN designations ON designations.id = employees.designation_id")
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*SalaryRecordWithEmployee, error) {
	var record SalaryRecordWithEmployee
	result := r.withEmployee(ctx).
		Where("salary_records.id = ?", id).
		Scan(&record)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &record, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]SalaryRecordWithEmployee, error) {
	var records []SalaryRecordWithEmployee
	err := r.withEmployee(ctx).
		Where("salary_records.employee_id = ?", employeeID).
		Order("salary_records.pay_period_start DESC").
		Scan(&records).Error
	return records, err
}

func (r *repository) FindAll(ctx context.Context) ([]SalaryRecordWithEmployee, error) {
	var records []SalaryRecordWithEmployee
	err := r.withEmployee(ctx).
		Order("salary_records.pay_period_start DESC, employees.full_name ASC").
		Scan(&records).Error
	return records, err
}

func (r *repository) FindInRange(ctx context.Context, from, to time.Time) ([]SalaryRecord, error) {
	var records []SalaryRecord
	err := r.db.WithContext(ctx).
		Where("pay_period_start BETWEEN ? AND ?", from, to).
		Find(&records).Error
	return records, err
}

func (r *repository) FindInRangeByEmployee(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]SalaryRecord, error) {
	var records []SalaryRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND pay_period_start BETWEEN ? AND ?", employeeID, from, to).
		Find(&records).Error
	return records, err
}
