package store

import (
	"github.com/google/uuid"
	"github.com/nexusos/backend/internal/models"
)

func (s *Scope) ListTasks() ([]models.Task, error) {
	tasks := []models.Task{}
	err := s.scoped().Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

// RecentTasks caps the result for prompt-context assembly.
func (s *Scope) RecentTasks(limit int) ([]models.Task, error) {
	tasks := []models.Task{}
	err := s.scoped().Order("created_at DESC").Limit(limit).Find(&tasks).Error
	return tasks, err
}

func (s *Scope) CreateTask(task *models.Task) error {
	task.OwnerID = s.owner
	task.SyncCompletion()
	return s.db.Create(task).Error
}

func (s *Scope) GetTask(id uuid.UUID) (models.Task, error) {
	var task models.Task
	err := s.getByID(&task, id)
	return task, err
}

// SaveTask persists a row previously loaded through this scope.
func (s *Scope) SaveTask(task *models.Task) error {
	if task.OwnerID != s.owner {
		return ErrNotFound
	}
	task.SyncCompletion()
	return s.db.Save(task).Error
}

func (s *Scope) DeleteTask(id uuid.UUID) error {
	return s.deleteByID(&models.Task{}, id)
}
