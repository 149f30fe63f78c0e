package models

import "github.com/google/uuid"

const DefaultMood = "neutral"

type JournalEntry struct {
	BaseModel
	Content string    `json:"content" gorm:"type:text;not null"`
	Mood    string    `json:"mood" gorm:"type:varchar(50);not null;default:'neutral'"`
	OwnerID uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`

	Owner User `json:"-" gorm:"foreignKey:OwnerID;references:ID"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}
