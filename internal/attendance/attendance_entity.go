package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLeave   = "Leave"
	StatusHalfDay = "Half Day"
)

// AttendanceRecord holds one status per employee per calendar day. The
// (employee_id, date) unique index is the real guard against double marking;
// the time-window check is advisory.
type AttendanceRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_employee_date"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendance_employee_date"`
	Status     string    `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time
}
