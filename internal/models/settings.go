package models

import "github.com/google/uuid"

// Settings holds one sparse row per owner, created lazily with defaults on
// first read. Pointer fields distinguish "not provided" from zero values on
// partial updates.
type Settings struct {
	BaseModel
	OwnerID       uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;uniqueIndex"`
	ThemeAccent   *string   `json:"theme_accent,omitempty" gorm:"type:varchar(50)"`
	WallpaperID   *string   `json:"wallpaper_id,omitempty" gorm:"type:varchar(100)"`
	SoundVolume   *float64  `json:"sound_volume,omitempty"`
	Notifications *bool     `json:"notifications,omitempty"`

	Owner User `json:"-" gorm:"foreignKey:OwnerID;references:ID"`
}

func (Settings) TableName() string {
	return "settings"
}
