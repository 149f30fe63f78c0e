package models

import (
	"time"

	"github.com/google/uuid"
)

// Habit streaks have no day-window dedup: every increment bumps the counter
// and stamps LastCompletedAt, even twice in the same minute. The timestamp is
// stored so a dedup policy can be added later without a migration.
type Habit struct {
	BaseModel
	Title           string     `json:"title" gorm:"type:varchar(255);not null"`
	Streak          int        `json:"streak" gorm:"not null;default:0"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
	OwnerID         uuid.UUID  `json:"owner_id" gorm:"type:uuid;not null;index"`

	Owner User `json:"-" gorm:"foreignKey:OwnerID;references:ID"`
}
