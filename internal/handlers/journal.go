package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/nexusos/backend/internal/models"
	"github.com/nexusos/backend/internal/store"
	"github.com/nexusos/backend/pkg/utils"
	"gorm.io/gorm"
)

type JournalHandler struct {
	DB *gorm.DB
}

func NewJournalHandler(db *gorm.DB) *JournalHandler {
	return &JournalHandler{DB: db}
}

func (h *JournalHandler) List(c *fiber.Ctx) error {
	scope, _ := requireScope(c, h.DB)
	if scope == nil {
		return nil
	}

	entries, err := scope.ListEntries()
	if err != nil {
		return writeStoreError(c, err, "failed listing journal entries")
	}
	return utils.Success(c, fiber.StatusOK, entries)
}

type createEntryRequest struct {
	Content string `json:"content"`
	Mood    string `json:"mood"`
}

func (h *JournalHandler) Create(c *fiber.Ctx) error {
	scope, _ := requireScope(c, h.DB)
	if scope == nil {
		return nil
	}

	var req createEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Content) == "" {
		return utils.Error(c, fiber.StatusBadRequest, "content is required")
	}

	entry := models.JournalEntry{Content: req.Content, Mood: strings.TrimSpace(req.Mood)}
	if err := scope.CreateEntry(&entry); err != nil {
		return writeStoreError(c, err, "failed creating journal entry")
	}
	return utils.Success(c, fiber.StatusCreated, entry)
}

func (h *JournalHandler) Delete(c *fiber.Ctx) error {
	scope, _ := requireScope(c, h.DB)
	if scope == nil {
		return nil
	}

	entryID, ok := store.ResolveID(c.Params("id"))
	if !ok {
		return ack(c)
	}

	if err := scope.DeleteEntry(entryID); err != nil {
		return writeStoreError(c, err, "failed deleting journal entry")
	}
	return ack(c)
}
