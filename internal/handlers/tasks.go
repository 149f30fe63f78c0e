package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/nexusos/backend/internal/models"
	"github.com/nexusos/backend/internal/store"
	"github.com/nexusos/backend/pkg/logger"
	"github.com/nexusos/backend/pkg/utils"
	"gorm.io/gorm"
)

type TasksHandler struct {
	DB *gorm.DB
}

func NewTasksHandler(db *gorm.DB) *TasksHandler {
	return &TasksHandler{DB: db}
}

func (h *TasksHandler) List(c *fiber.Ctx) error {
	scope, _ := requireScope(c, h.DB)
	if scope == nil {
		return nil
	}

	tasks, err := scope.ListTasks()
	if err != nil {
		return writeStoreError(c, err, "failed listing tasks")
	}
	return utils.Success(c, fiber.StatusOK, tasks)
}

type createTaskRequest struct {
	Title string `json:"title"`
}

func (h *TasksHandler) Create(c *fiber.Ctx) error {
	scope, currentUser := requireScope(c, h.DB)
	if scope == nil {
		return nil
	}

	var req createTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return utils.Error(c, fiber.StatusBadRequest, "title is required")
	}

	task := models.Task{Title: req.Title, Status: models.TaskStatusTodo}
	if err := scope.CreateTask(&task); err != nil {
		return writeStoreError(c, err, "failed creating task")
	}

	logger.InfoWithUser(currentUser.ID.String(), "task_created", map[string]interface{}{
		"task_id": task.ID.String(),
	})

	return utils.Success(c, fiber.StatusCreated, task)
}

type updateTaskRequest struct {
	Title     *string `json:"title"`
	Status    *string `json:"status"`
	Completed *bool   `json:"completed"`
}

// Update accepts either the status enum or the legacy completed boolean and
// keeps both representations consistent: status is canonical, completed is
// derived from it on every write.
func (h *TasksHandler) Update(c *fiber.Ctx) error {
	scope, _ := requireScope(c, h.DB)
	if scope == nil {
		return nil
	}

	var req updateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	taskID, ok := store.ResolveID(c.Params("id"))
	if !ok {
		// Placeholder id from an optimistic client; accepted no-op.
		return ack(c)
	}

	task, err := scope.GetTask(taskID)
	if err != nil {
		return writeStoreError(c, err, "failed loading task")
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return utils.Error(c, fiber.StatusBadRequest, "title must not be empty")
		}
		task.Title = title
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		if !status.Valid() {
			return utils.Error(c, fiber.StatusBadRequest, "invalid status")
		}
		task.Status = status
	} else if req.Completed != nil {
		if *req.Completed {
			task.Status = models.TaskStatusDone
		} else if task.Status == models.TaskStatusDone {
			task.Status = models.TaskStatusTodo
		}
	}

	if err := scope.SaveTask(&task); err != nil {
		return writeStoreError(c, err, "failed updating task")
	}
	return utils.Success(c, fiber.StatusOK, task)
}

func (h *TasksHandler) Delete(c *fiber.Ctx) error {
	scope, _ := requireScope(c, h.DB)
	if scope == nil {
		return nil
	}

	taskID, ok := store.ResolveID(c.Params("id"))
	if !ok {
		return ack(c)
	}

	if err := scope.DeleteTask(taskID); err != nil {
		return writeStoreError(c, err, "failed deleting task")
	}
	return ack(c)
}
