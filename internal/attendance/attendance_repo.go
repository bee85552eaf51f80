package attendance

import (
	"context"
	"database/sql"
	"time"

	"go-payroll/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, record *AttendanceRecord) error
	CreateMany(ctx context.Context, records []AttendanceRecord) error
	Exists(ctx context.Context, employeeID string, date time.Time) (bool, error)
	FindRange(ctx context.Context, employeeID string, from, to time.Time) ([]AttendanceRecord, error)
	FindByEmployees(ctx context.Context, employeeIDs []string, from, to time.Time) ([]AttendanceRecord, error)
	CountByStatus(ctx context.Context, employeeID string, from, to time.Time) (map[string]int, error)
	DeleteLeaveRange(ctx context.Context, employeeID string, from, to time.Time) error
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

func (r *repository) Create(ctx context.Context, record *AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// CreateMany skips days that already carry a record, so an approved leave
// does not clash with a self-marked Present on its first day.
func (r *repository) CreateMany(ctx context.Context, records []AttendanceRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&records).Error
}

func (r *repository) Exists(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&AttendanceRecord{}).
		Where("employee_id = ? AND date = ?", employeeID, date.Format("2006-01-02")).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindRange(ctx context.Context, employeeID string, from, to time.Time) ([]AttendanceRecord, error) {
	var records []AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date BETWEEN ? AND ?",
			employeeID, from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("date ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindByEmployees(ctx context.Context, employeeIDs []string, from, to time.Time) ([]AttendanceRecord, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	var records []AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("employee_id IN ? AND date BETWEEN ? AND ?",
			employeeIDs, from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("date ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) CountByStatus(ctx context.Context, employeeID string, from, to time.Time) (map[string]int, error) {
	type statusCount struct {
		Status string
		Count  int
	}

	var rows []statusCount
	err := r.db.WithContext(ctx).
		Model(&AttendanceRecord{}).
		Select("status, COUNT(*) AS count").
		Where("employee_id = ? AND date BETWEEN ? AND ?",
			employeeID, from.Format("2006-01-02"), to.Format("2006-01-02")).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// DeleteLeaveRange removes leave-generated rows only; self-marked Present and
// regularized Absent rows survive a leave cancellation.
func (r *repository) DeleteLeaveRange(ctx context.Context, employeeID string, from, to time.Time) error {
	return r.db.WithContext(ctx).
		Where("employee_id = ? AND date BETWEEN ? AND ? AND status IN ?",
			employeeID, from.Format("2006-01-02"), to.Format("2006-01-02"),
			[]string{StatusLeave, StatusHalfDay}).
		Delete(&AttendanceRecord{}).Error
}
