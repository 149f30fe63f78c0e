// Package store centralizes all row access behind an owner-bound scope.
// Every query issued through a Scope carries the owner filter, so no handler
// can forget it. Handlers never touch *gorm.DB for resource rows directly.
package store

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound reports that the target row does not exist for this owner.
// A row that exists but belongs to someone else is indistinguishable from a
// missing one, by contract.
var ErrNotFound = errors.New("record not found")

// Scope is a request-scoped capability bound to one verified owner id.
type Scope struct {
	db    *gorm.DB
	owner uuid.UUID
}

func NewScope(db *gorm.DB, owner uuid.UUID) *Scope {
	return &Scope{db: db, owner: owner}
}

func (s *Scope) Owner() uuid.UUID {
	return s.owner
}

// ResolveID parses a client-supplied row id. ok=false marks a client-side
// placeholder id minted before the create round-trip finished; writes against
// one are accepted no-ops, not errors.
func ResolveID(raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (s *Scope) scoped() *gorm.DB {
	return s.db.Where("owner_id = ?", s.owner)
}

func (s *Scope) getByID(dest any, id uuid.UUID) error {
	err := s.db.First(dest, "id = ? AND owner_id = ?", id, s.owner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Scope) deleteByID(model any, id uuid.UUID) error {
	result := s.db.Where("id = ? AND owner_id = ?", id, s.owner).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
