package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nexusos/backend/internal/store"
	"github.com/nexusos/backend/pkg/utils"
	"gorm.io/gorm"
)

type SettingsHandler struct {
	DB *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{DB: db}
}

// Get lazily creates the settings row with defaults on first read; the
// create happens at most once per owner.
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	scope, _ := requireScope(c, h.DB)
	if scope == nil {
		return nil
	}

	settings, err := scope.Settings()
	if err != nil {
		return writeStoreError(c, err, "failed loading settings")
	}
	return utils.Success(c, fiber.StatusOK, settings)
}

type updateSettingsRequest struct {
	ThemeAccent   *string  `json:"theme_accent"`
	WallpaperID   *string  `json:"wallpaper_id"`
	SoundVolume   *float64 `json:"sound_volume"`
	Notifications *bool    `json:"notifications"`
}

func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	scope, _ := requireScope(c, h.DB)
	if scope == nil {
		return nil
	}

	var req updateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.SoundVolume != nil && (*req.SoundVolume < 0 || *req.SoundVolume > 1) {
		return utils.Error(c, fiber.StatusBadRequest, "sound_volume must be between 0 and 1")
	}

	settings, err := scope.UpdateSettings(store.SettingsPatch{
		ThemeAccent:   req.ThemeAccent,
		WallpaperID:   req.WallpaperID,
		SoundVolume:   req.SoundVolume,
		Notifications: req.Notifications,
	})
	if err != nil {
		return writeStoreError(c, err, "failed updating settings")
	}
	return utils.Success(c, fiber.StatusOK, settings)
}
