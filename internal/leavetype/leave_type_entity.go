package leavetype

import (
	"time"

	"github.com/google/uuid"
)

type LeaveType struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string    `gorm:"type:varchar(100);uniqueIndex:uq_leave_type_name;not null"`
	NumberOfLeaves float64   `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
