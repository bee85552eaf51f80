package payroll

import (
	"time"

	"github.com/google/uuid"
)

// SalaryRecord is one released month of pay. All amounts are int64 paise.
// Rows are immutable after insert; the (employee_id, pay_period_start) unique
// index is the at-most-once guard for release.
type SalaryRecord struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_salary_employee_period"`
	PayPeriodStart time.Time `gorm:"type:date;not null;uniqueIndex:uq_salary_employee_period"`
	Gross          int64     `gorm:"not null"`
	Bonus          int64     `gorm:"not null"`
	PF             int64     `gorm:"column:pf;not null"`
	Penalty        int64     `gorm:"not null"`
	Tax            int64     `gorm:"not null"`
	NetPay         int64     `gorm:"not null"`
	AbsentDays     int       `gorm:"not null"`
	ReleasedBy     *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
}
