package store

import (
	"github.com/google/uuid"
	"github.com/nexusos/backend/internal/models"
)

func (s *Scope) ListTransactions() ([]models.Transaction, error) {
	txns := []models.Transaction{}
	err := s.scoped().Order("created_at DESC").Find(&txns).Error
	return txns, err
}

func (s *Scope) RecentTransactions(limit int) ([]models.Transaction, error) {
	txns := []models.Transaction{}
	err := s.scoped().Order("created_at DESC").Limit(limit).Find(&txns).Error
	return txns, err
}

func (s *Scope) CreateTransaction(txn *models.Transaction) error {
	txn.OwnerID = s.owner
	return s.db.Create(txn).Error
}

func (s *Scope) DeleteTransaction(id uuid.UUID) error {
	return s.deleteByID(&models.Transaction{}, id)
}
