package auth

import (
	"context"
	"database/sql"
	"time"

	"go-payroll/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	Create(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hashed string) error
	UpdateRole(ctx context.Context, email, role string) (int64, error)
	EmployeeFullName(ctx context.Context, employeeID uuid.UUID) (string, error)

	CreateLoginLog(ctx context.Context, log *LoginLog) error
	GetLoginLog(ctx context.Context, id uuid.UUID) (*LoginLog, error)
	CloseLoginLog(ctx context.Context, id uuid.UUID, at time.Time) (int64, error)
	ListLoginLogs(ctx context.Context, limit int) ([]LoginLogWithName, error)
}

// LoginLogWithName joins the employee full name onto a login log row.
type LoginLogWithName struct {
	LoginLog
	FullName string
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

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	return &user, err
}

func (r *repository) Create(ctx context.Context, user *User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *repository) UpdatePassword(ctx context.Context, id uuid.UUID, hashed string) error {
	return r.db.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", id).
		Update("password", hashed).Error
}

func (r *repository) UpdateRole(ctx context.Context, email, role string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&User{}).
		Where("email = ?", email).
		Update("role", role)
	return res.RowsAffected, res.Error
}

func (r *repository) EmployeeFullName(ctx context.Context, employeeID uuid.UUID) (string, error) {
	var fullName string
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("full_name").
		Where("id = ?", employeeID).
		Scan(&fullName).Error
	return fullName, err
}

func (r *repository) CreateLoginLog(ctx context.Context, log *LoginLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// CloseLoginLog only touches rows that are still open, which keeps logout
// idempotent.
func (r *repository) CloseLoginLog(ctx context.Context, id uuid.UUID, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&LoginLog{}).
		Where("id = ? AND logout_time IS NULL", id).
		Update("logout_time", at)
	return res.RowsAffected, res.Error
}

func (r *repository) GetLoginLog(ctx context.Context, id uuid.UUID) (*LoginLog, error) {
	var log LoginLog
	err := r.db.WithContext(ctx).First(&log, "id = ?", id).Error
	return &log, err
}

func (r *repository) ListLoginLogs(ctx context.Context, limit int) ([]LoginLogWithName, error) {
	var logs []LoginLogWithName
	q := r.db.WithContext(ctx).
		Table("login_logs").
		Select("login_logs.*, COALESCE(employees.full_name, '') AS full_name").
		Joins("LEFT JOIN employees ON employees.id = login_logs.employee_id").
		Order("login_logs.login_time DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Scan(&logs).Error
	return logs, err
}
