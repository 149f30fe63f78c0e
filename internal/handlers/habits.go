package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/nexusos/backend/internal/models"
	"github.com/nexusos/backend/internal/store"
	"github.com/nexusos/backend/pkg/utils"
	"gorm.io/gorm"
)

type HabitsHandler struct {
	DB *gorm.DB
}

func NewHabitsHandler(db *gorm.DB) *HabitsHandler {
	return &HabitsHandler{DB: db}
}

func (h *HabitsHandler) List(c *fiber.Ctx) error {
	scope, _ := requireScope(c, h.DB)
	if scope == nil {
		return nil
	}

	habits, err := scope.ListHabits()
	if err != nil {
		return writeStoreError(c, err, "failed listing habits")
	}
	return utils.Success(c, fiber.StatusOK, habits)
}

type createHabitRequest struct {
	Title string `json:"title"`
}

func (h *HabitsHandler) Create(c *fiber.Ctx) error {
	scope, _ := requireScope(c, h.DB)
	if scope == nil {
		return nil
	}

	var req createHabitRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return utils.Error(c, fiber.StatusBadRequest, "title is required")
	}

	habit := models.Habit{Title: req.Title}
	if err := scope.CreateHabit(&habit); err != nil {
		return writeStoreError(c, err, "failed creating habit")
	}
	return utils.Success(c, fiber.StatusCreated, habit)
}

func (h *HabitsHandler) Increment(c *fiber.Ctx) error {
	scope, _ := requireScope(c, h.DB)
	if scope == nil {
		return nil
	}

	habitID, ok := store.ResolveID(c.Params("id"))
	if !ok {
		return ack(c)
	}

	habit, err := scope.IncrementHabit(habitID)
	if err != nil {
		return writeStoreError(c, err, "failed incrementing habit")
	}
	return utils.Success(c, fiber.StatusOK, habit)
}

func (h *HabitsHandler) Delete(c *fiber.Ctx) error {
	scope, _ := requireScope(c, h.DB)
	if scope == nil {
		return nil
	}

	habitID, ok := store.ResolveID(c.Params("id"))
	if !ok {
		return ack(c)
	}

	if err := scope.DeleteHabit(habitID); err != nil {
		return writeStoreError(c, err, "failed deleting habit")
	}
	return ack(c)
}
