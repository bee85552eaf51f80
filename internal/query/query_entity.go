package query

import (
	"time"

	"github.com/google/uuid"
)

// Status moves forward only: Open, then In Progress, then Resolved.
// Resolved is terminal.
const (
	StatusOpen       = "Open"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
)

const defaultComment = "No comment."

// Query is an employee's question about one released salary record.
type Query struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID     uuid.UUID `gorm:"type:uuid;not null;index"`
	SalaryRecordID uuid.UUID `gorm:"type:uuid;not null"`
	Description    string    `gorm:"type:varchar(100);not null"`
	Status         string    `gorm:"type:varchar(20);not null;index"`
	Comment        string    `gorm:"type:varchar(255);not null"`
	RespondedBy    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
