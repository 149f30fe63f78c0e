package store

import (
	"github.com/google/uuid"
	"github.com/nexusos/backend/internal/models"
	"gorm.io/gorm"
)

// ListFileNodes returns one level of the tree: children of parentID, or root
// nodes when parentID is nil. Folders sort before files, then by name.
func (s *Scope) ListFileNodes(parentID *uuid.UUID) ([]models.FileNode, error) {
	nodes := []models.FileNode{}
	query := s.scoped().Order("kind DESC").Order("name ASC")
	if parentID != nil {
		query = query.Where("parent_id = ?", *parentID)
	} else {
		query = query.Where("parent_id IS NULL")
	}
	err := query.Find(&nodes).Error
	return nodes, err
}

func (s *Scope) SampleFileNodes(limit int) ([]models.FileNode, error) {
	nodes := []models.FileNode{}
	err := s.scoped().Limit(limit).Find(&nodes).Error
	return nodes, err
}

func (s *Scope) CreateFileNode(node *models.FileNode) error {
	node.OwnerID = s.owner
	if node.ParentID != nil {
		// Reject parents the owner cannot see; prevents grafting onto
		// another user's tree.
		var parent models.FileNode
		if err := s.getByID(&parent, *node.ParentID); err != nil {
			return err
		}
		if parent.Kind != models.NodeKindFolder {
			return ErrNotFound
		}
	}
	return s.db.Create(node).Error
}

func (s *Scope) GetFileNode(id uuid.UUID) (models.FileNode, error) {
	var node models.FileNode
	err := s.getByID(&node, id)
	return node, err
}

func (s *Scope) SaveFileNode(node *models.FileNode) error {
	if node.OwnerID != s.owner {
		return ErrNotFound
	}
	return s.db.Save(node).Error
}

// DeleteFileNode removes a node and its whole subtree.
func (s *Scope) DeleteFileNode(id uuid.UUID) error {
	var node models.FileNode
	if err := s.getByID(&node, id); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.deleteSubtree(tx, id)
	})
}

func (s *Scope) deleteSubtree(tx *gorm.DB, id uuid.UUID) error {
	var children []models.FileNode
	if err := tx.Where("parent_id = ? AND owner_id = ?", id, s.owner).Find(&children).Error; err != nil {
		return err
	}
	for _, child := range children {
		if err := s.deleteSubtree(tx, child.ID); err != nil {
			return err
		}
	}
	return tx.Where("id = ? AND owner_id = ?", id, s.owner).Delete(&models.FileNode{}).Error
}
