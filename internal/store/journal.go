package store

import (
	"github.com/google/uuid"
	"github.com/nexusos/backend/internal/models"
)

func (s *Scope) ListEntries() ([]models.JournalEntry, error) {
	entries := []models.JournalEntry{}
	err := s.scoped().Order("created_at DESC").Find(&entries).Error
	return entries, err
}

func (s *Scope) RecentEntries(limit int) ([]models.JournalEntry, error) {
	entries := []models.JournalEntry{}
	err := s.scoped().Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

func (s *Scope) CreateEntry(entry *models.JournalEntry) error {
	entry.OwnerID = s.owner
	if entry.Mood == "" {
		entry.Mood = models.DefaultMood
	}
	return s.db.Create(entry).Error
}

func (s *Scope) DeleteEntry(id uuid.UUID) error {
	return s.deleteByID(&models.JournalEntry{}, id)
}
