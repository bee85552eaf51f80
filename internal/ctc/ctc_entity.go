package ctc

import (
	"time"

	"github.com/google/uuid"
)

// Bounds on the annual figure, in paise. A zero row is the provisioned
// placeholder before the payroll specialist sets a real value.
const (
	MinCTC = 18_000_00
	MaxCTC = 5_000_000_00
)

// CTC holds one employee's annual cost to company in paise.
type CTC struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_ctc_employee"`
	CostToCompany int64     `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
