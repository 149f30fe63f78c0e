package store

import (
	"errors"

	"github.com/nexusos/backend/internal/models"
	"gorm.io/gorm"
)

func defaultSettings() models.Settings {
	theme := "cyan"
	wallpaper := "default"
	volume := 0.5
	notifications := true
	return models.Settings{
		ThemeAccent:   &theme,
		WallpaperID:   &wallpaper,
		SoundVolume:   &volume,
		Notifications: &notifications,
	}
}

// Settings returns the owner's settings row, lazily creating it with
// defaults on first read. The unique index on owner_id keeps concurrent
// first reads from creating two rows; the loser of that race re-reads.
func (s *Scope) Settings() (models.Settings, error) {
	var settings models.Settings
	err := s.scoped().First(&settings).Error
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Settings{}, err
	}

	settings = defaultSettings()
	settings.OwnerID = s.owner
	if createErr := s.db.Create(&settings).Error; createErr != nil {
		if readErr := s.scoped().First(&settings).Error; readErr == nil {
			return settings, nil
		}
		return models.Settings{}, createErr
	}
	return settings, nil
}

// SettingsPatch carries only the fields the client supplied.
type SettingsPatch struct {
	ThemeAccent   *string
	WallpaperID   *string
	SoundVolume   *float64
	Notifications *bool
}

func (s *Scope) UpdateSettings(patch SettingsPatch) (models.Settings, error) {
	settings, err := s.Settings()
	if err != nil {
		return models.Settings{}, err
	}

	if patch.ThemeAccent != nil {
		settings.ThemeAccent = patch.ThemeAccent
	}
	if patch.WallpaperID != nil {
		settings.WallpaperID = patch.WallpaperID
	}
	if patch.SoundVolume != nil {
		settings.SoundVolume = patch.SoundVolume
	}
	if patch.Notifications != nil {
		settings.Notifications = patch.Notifications
	}

	if err := s.db.Save(&settings).Error; err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}
