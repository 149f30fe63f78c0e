package models

type User struct {
	BaseModel
	Email        string  `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string  `json:"-" gorm:"type:text;not null"`
	FullName     string  `json:"full_name" gorm:"type:varchar(255)"`
	AvatarURL    *string `json:"avatar_url,omitempty" gorm:"type:text"`

	Tasks     []Task         `json:"-" gorm:"foreignKey:OwnerID"`
	Entries   []JournalEntry `json:"-" gorm:"foreignKey:OwnerID"`
	Habits    []Habit        `json:"-" gorm:"foreignKey:OwnerID"`
	FileNodes []FileNode     `json:"-" gorm:"foreignKey:OwnerID"`
}
