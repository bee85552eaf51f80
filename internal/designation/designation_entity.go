package designation

import (
	"time"

	"github.com/google/uuid"
)

type Designation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex:uq_designation_name;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
