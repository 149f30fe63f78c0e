package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/nexusos/backend/internal/services"
	"github.com/nexusos/backend/pkg/utils"
	"gorm.io/gorm"
)

type DebugHandler struct {
	DB    *gorm.DB
	Nexus *services.NexusService
}

func NewDebugHandler(db *gorm.DB, nexus *services.NexusService) *DebugHandler {
	return &DebugHandler{DB: db, Nexus: nexus}
}

// RunDiagnostics aggregates a pass/fail check per external dependency and
// asks the bridge to narrate the result. The narration itself tolerates the
// bridge being offline.
func (h *DebugHandler) RunDiagnostics(c *fiber.Ctx) error {
	scope, currentUser := requireScope(c, h.DB)
	if scope == nil {
		return nil
	}

	checks := map[string]string{}

	if _, err := scope.RecentTasks(1); err != nil {
		checks["database"] = fmt.Sprintf("FAIL: %s", err.Error())
	} else {
		checks["database"] = "PASS"
	}

	uid := currentUser.ID.String()
	checks["auth"] = fmt.Sprintf("PASS (UID: %s)", uid[:8])

	if h.Nexus.Configured() {
		checks["ai"] = "PASS"
	} else {
		checks["ai"] = "FAIL: API key missing"
	}

	report := fiber.Map{"checks": checks}
	analysis := h.Nexus.Complete(
		c.Context(),
		fmt.Sprintf("System health check results: %v. Summarize system status in one paragraph.", checks),
		services.Snapshot{},
	)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"technical_report": report,
		"ai_analysis":      analysis,
	})
}
