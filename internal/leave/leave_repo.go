package leave

import (
	"context"
	"database/sql"

	"go-payroll/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeaveRequestWithNames struct {
	LeaveRequest
	EmployeeName  string `gorm:"column:employee_name"`
	LeaveTypeName string `gorm:"column:leave_type_name"`
}

type LeaveBalanceWithType struct {
	LeaveBalance
	LeaveTypeName string `gorm:"column:leave_type_name"`
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateRequest(ctx context.Context, request *LeaveRequest) error
	FindRequestByID(ctx context.Context, id uuid.UUID) (*LeaveRequest, error)
	FindRequestsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]LeaveRequestWithNames, error)
	FindPendingForManager(ctx context.Context, managerID uuid.UUID) ([]LeaveRequestWithNames, error)
	UpdateRequest(ctx context.Context, request *LeaveRequest) error
	FindBalances(ctx context.Context, employeeID uuid.UUID) ([]LeaveBalanceWithType, error)
	FindBalance(ctx context.Context, employeeID, leaveTypeID uuid.UUID) (*LeaveBalance, error)
	UpdateBalance(ctx context.Context, balance *LeaveBalance) error
	CreateBalances(ctx context.Context, balances []LeaveBalance) error
	EmployeeReportsTo(ctx context.Context, employeeID, managerID uuid.UUID) (bool, error)
	FindApprovedByType(ctx context.Context, employeeID uuid.UUID, leaveTypeName string) ([]LeaveRequest, error)
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

func (r *repository) CreateRequest(ctx context.Context, request *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *repository) FindRequestByID(ctx context.Context, id uuid.UUID) (*LeaveRequest, error) {
	var request LeaveRequest
	if err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *repository) requestsWithNames(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Select("leave_requests.*, employees.full_name AS employee_name, leave_types.name AS leave_type_name").
		Joins("LEFT JOIN employees ON employees.id = leave_requests.employee_id").
		Joins("LEFT JOIN leave_types ON leave_types.id = leave_requests.leave_type_id")
}

func (r *repository) FindRequestsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]LeaveRequestWithNames, error) {
	var requests []LeaveRequestWithNames
	err := r.requestsWithNames(ctx).
		Where("leave_requests.employee_id = ?", employeeID).
		Order("leave_requests.created_at DESC").
		Scan(&requests).Error
	return requests, err
}

func (r *repository) FindPendingForManager(ctx context.Context, managerID uuid.UUID) ([]LeaveRequestWithNames, error) {
	var requests []LeaveRequestWithNames
	err := r.requestsWithNames(ctx).
		Where("employees.manager_id = ? AND leave_requests.status = ?", managerID, StatusPending).
		Order("leave_requests.created_at ASC").
		Scan(&requests).Error
	return requests, err
}

func (r *repository) UpdateRequest(ctx context.Context, request *LeaveRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

func (r *repository) FindBalances(ctx context.Context, employeeID uuid.UUID) ([]LeaveBalanceWithType, error) {
	var balances []LeaveBalanceWithType
	err := r.db.WithContext(ctx).
		Model(&LeaveBalance{}).
		Select("leave_balances.*, leave_types.name AS leave_type_name").
		Joins("LEFT JOIN leave_types ON leave_types.id = leave_balances.leave_type_id").
		Where("leave_balances.employee_id = ?", employeeID).
		Order("leave_types.name ASC").
		Scan(&balances).Error
	return balances, err
}

func (r *repository) FindBalance(ctx context.Context, employeeID, leaveTypeID uuid.UUID) (*LeaveBalance, error) {
	var balance LeaveBalance
	err := r.db.WithContext(ctx).
		First(&balance, "employee_id = ? AND leave_type_id = ?", employeeID, leaveTypeID).Error
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

func (r *repository) UpdateBalance(ctx context.Context, balance *LeaveBalance) error {
	return r.db.WithContext(ctx).Save(balance).Error
}

func (r *repository) CreateBalances(ctx context.Context, balances []LeaveBalance) error {
	if len(balances) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&balances).Error
}

func (r *repository) EmployeeReportsTo(ctx context.Context, employeeID, managerID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ? AND manager_id = ?", employeeID, managerID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindApprovedByType(ctx context.Context, employeeID uuid.UUID, leaveTypeName string) ([]LeaveRequest, error) {
	var requests []LeaveRequest
	err := r.db.WithContext(ctx).
		Joins("JOIN leave_types ON leave_types.id = leave_requests.leave_type_id").
		Where("leave_requests.employee_id = ? AND leave_requests.status = ? AND leave_types.name = ?",
			employeeID, StatusApproved, leaveTypeName).
		Find(&requests).Error
	return requests, err
}
