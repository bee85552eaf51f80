package employee

import (
	"time"

	"github.com/google/uuid"
)

// Employee is the root record every other domain hangs off. Rows are never
// hard-deleted; deactivation flips IsActive.
type Employee struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName      string    `gorm:"type:varchar(255);not null"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex:uq_employee_email;not null"`
	MobileNumber  string    `gorm:"type:varchar(20);uniqueIndex:uq_employee_mobile"`
	DateOfBirth   time.Time `gorm:"type:date;not null"`
	JoiningDate   time.Time `gorm:"type:date;not null"`
	DesignationID *uuid.UUID `gorm:"type:uuid"`
	ManagerID     *uuid.UUID `gorm:"type:uuid;index"`
	RoleID        *uuid.UUID `gorm:"type:uuid"`
	IsActive      bool       `gorm:"default:true"`
	Rating        *int
	RatedAt       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
