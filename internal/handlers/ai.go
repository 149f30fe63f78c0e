package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/nexusos/backend/internal/services"
	"github.com/nexusos/backend/pkg/utils"
	"gorm.io/gorm"
)

type AIHandler struct {
	DB    *gorm.DB
	Nexus *services.NexusService
}

func NewAIHandler(db *gorm.DB, nexus *services.NexusService) *AIHandler {
	return &AIHandler{DB: db, Nexus: nexus}
}

type commandRequest struct {
	Command string `json:"command"`
}

// Command answers a free-text prompt against a bounded snapshot of the
// owner's records. Bridge failures come back as fallback text, never as an
// HTTP error; the AI surface is best-effort by contract.
func (h *AIHandler) Command(c *fiber.Ctx) error {
	scope, _ := requireScope(c, h.DB)
	if scope == nil {
		return nil
	}

	var req commandRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	req.Command = strings.TrimSpace(req.Command)
	if req.Command == "" {
		return utils.Error(c, fiber.StatusBadRequest, "command is required")
	}

	snapshot := services.Assemble(scope, services.DefaultRecipe())
	response := h.Nexus.Complete(c.Context(), req.Command, snapshot)

	return utils.Success(c, fiber.StatusOK, fiber.Map{"response": response})
}

func (h *AIHandler) Briefing(c *fiber.Ctx) error {
	scope, _ := requireScope(c, h.DB)
	if scope == nil {
		return nil
	}

	snapshot := services.Assemble(scope, services.DefaultRecipe())
	message := h.Nexus.Briefing(c.Context(), snapshot)

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": message})
}
