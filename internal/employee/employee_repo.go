package employee

import (
	"context"
	"database/sql"

	"go-payroll/internal/shared/connection"

	"gorm.io/gorm"
)

// EmployeeWithNames joins designation, manager and role names onto an
// employee row for list and detail responses.
type EmployeeWithNames struct {
	Employee
	DesignationName string
	ManagerName     string
	RoleName        string
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, employee *Employee) error
	FindAll(ctx context.Context) ([]EmployeeWithNames, error)
	FindByID(ctx context.Context, id string) (*EmployeeWithNames, error)
	FindEntityByID(ctx context.Context, id string) (*Employee, error)
	Update(ctx context.Context, employee *Employee) error
	FindManagers(ctx context.Context) ([]EmployeeWithNames, error)
	FindTeam(ctx context.Context, managerID string) ([]EmployeeWithNames, error)
	RoleName(ctx context.Context, roleID string) (string, error)
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

func (r *repository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("employees").
		Select(`employees.*,
			COALESCE(designations.name, '') AS designation_name,
			COALESCE(managers.full_name, '') AS manager_name,
			COALESCE(roles.name, '') AS role_name`).
		Joins("LEFT JOIN designations ON designations.id = employees.designation_id").
		Joins("LEFT JOIN employees managers ON managers.id = employees.manager_id").
		Joins("LEFT JOIN roles ON roles.id = employees.role_id")
}

func (r *repository) Create(ctx context.Context, employee *Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *repository) FindAll(ctx context.Context) ([]EmployeeWithNames, error) {
	var employees []EmployeeWithNames
	err := r.joined(ctx).Order("employees.full_name ASC").Scan(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*EmployeeWithNames, error) {
	var employee EmployeeWithNames
	res := r.joined(ctx).Where("employees.id = ?", id).Scan(&employee)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &employee, nil
}

func (r *repository) FindEntityByID(ctx context.Context, id string) (*Employee, error) {
	var employee Employee
	err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error
	return &employee, err
}

func (r *repository) Update(ctx context.Context, employee *Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

func (r *repository) FindManagers(ctx context.Context) ([]EmployeeWithNames, error) {
	var managers []EmployeeWithNames
	err := r.joined(ctx).
		Where("roles.name = ? AND employees.is_active", "Manager").
		Order("employees.full_name ASC").
		Scan(&managers).Error
	return managers, err
}

func (r *repository) FindTeam(ctx context.Context, managerID string) ([]EmployeeWithNames, error) {
	var team []EmployeeWithNames
	err := r.joined(ctx).
		Where("employees.manager_id = ?", managerID).
		Order("employees.full_name ASC").
		Scan(&team).Error
	return team, err
}

func (r *repository) RoleName(ctx context.Context, roleID string) (string, error) {
	var name string
	err := r.db.WithContext(ctx).
		Table("roles").
		Select("name").
		Where("id = ?", roleID).
		Scan(&name).Error
	return name, err
}
