package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
	StatusCancelled = "Cancelled"

	HalfMorning   = "Morning"
	HalfAfternoon = "Afternoon"
)

// LeaveBalance tracks one employee's allotment for one leave type.
// remaining = total - used at all times.
type LeaveBalance struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balance_employee_type"`
	LeaveTypeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balance_employee_type"`
	Total       float64   `gorm:"not null"`
	Used        float64   `gorm:"not null;default:0"`
	Remaining   float64   `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type LeaveRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index"`
	LeaveTypeID uuid.UUID `gorm:"type:uuid;not null"`
	StartDate   time.Time `gorm:"type:date;not null"`
	StartHalf   string    `gorm:"type:varchar(10);not null"`
	EndDate     time.Time `gorm:"type:date;not null"`
	EndHalf     string    `gorm:"type:varchar(10);not null"`
	Reason      string    `gorm:"type:varchar(50);not null"`
	Status      string    `gorm:"type:varchar(20);not null;index"`
	NoOfDays    float64   `gorm:"not null"`
	Description string    `gorm:"type:varchar(255)"` // approver's comment
	ResolvedBy  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
