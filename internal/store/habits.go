package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/nexusos/backend/internal/models"
)

func (s *Scope) ListHabits() ([]models.Habit, error) {
	habits := []models.Habit{}
	err := s.scoped().Order("created_at DESC").Find(&habits).Error
	return habits, err
}

// TopHabits returns the longest streaks first, for prompt-context assembly.
func (s *Scope) TopHabits(limit int) ([]models.Habit, error) {
	habits := []models.Habit{}
	err := s.scoped().Order("streak DESC").Limit(limit).Find(&habits).Error
	return habits, err
}

func (s *Scope) CreateHabit(habit *models.Habit) error {
	habit.OwnerID = s.owner
	habit.Streak = 0
	return s.db.Create(habit).Error
}

// IncrementHabit bumps the streak unconditionally and stamps the completion
// time. Two calls in one minute increment twice; that is current product
// behavior, not a bug.
func (s *Scope) IncrementHabit(id uuid.UUID) (models.Habit, error) {
	var habit models.Habit
	if err := s.getByID(&habit, id); err != nil {
		return models.Habit{}, err
	}

	now := time.Now().UTC()
	habit.Streak++
	habit.LastCompletedAt = &now
	if err := s.db.Save(&habit).Error; err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (s *Scope) DeleteHabit(id uuid.UUID) error {
	return s.deleteByID(&models.Habit{}, id)
}
