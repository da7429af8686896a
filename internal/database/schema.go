package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	KindSummary  string = "summary"
	KindContract string = "contract"
	KindSections string = "sections"
)

// Interaction is one completed AI operation. Rows are written only after a
// successful gateway call and are never updated, only deleted.
type Interaction struct {
	Id uuid.UUID `gorm:"type:uuid;primaryKey"`

	Kind       string `gorm:"size:20;not null"`
	InputText  string `gorm:"not null"`
	AIResponse string `gorm:"not null"`

	SourceFileName sql.NullString

	Metadata datatypes.JSON `gorm:"type:jsonb"` // {"model": "…"}

	CreatedAt time.Time `gorm:"index"`
}
