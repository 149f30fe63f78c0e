package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nexusos/backend/internal/middleware"
	"github.com/nexusos/backend/internal/models"
	"github.com/nexusos/backend/internal/store"
	"github.com/nexusos/backend/pkg/utils"
	"gorm.io/gorm"
)

// requireScope resolves the verified user from request locals and binds an
// owner scope for the duration of the request. A nil scope means the error
// response has already been written.
func requireScope(c *fiber.Ctx, db *gorm.DB) (*store.Scope, *models.User) {
	currentUser := middleware.GetCurrentUser(c)
	if currentUser == nil {
		_ = utils.Error(c, fiber.StatusUnauthorized, "unauthorized")
		return nil, nil
	}
	return store.NewScope(db, currentUser.ID), currentUser
}

// writeStoreError maps store failures onto the error taxonomy.
func writeStoreError(c *fiber.Ctx, err error, action string) error {
	if err == store.ErrNotFound {
		return utils.Error(c, fiber.StatusNotFound, "not found")
	}
	return utils.Error(c, fiber.StatusInternalServerError, action)
}

// ack is the fixed body for deletes and accepted no-ops.
func ack(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{"msg": "deleted"})
}
