// Package memory provides the in-memory knowledge repository. The service
// keeps all state in process; there is no durable backend.
package memory

import (
	"context"
	"sync"

	"knowcore/domain/knowledge"
	apperrors "knowcore/pkg/errors"
)

// KnowledgeStore is a thread-safe map-backed knowledge repository.
type KnowledgeStore struct {
	mu    sync.RWMutex
	units map[string]*knowledge.Unit
}

// NewKnowledgeStore creates an empty store.
func NewKnowledgeStore() *KnowledgeStore {
	return &KnowledgeStore{units: make(map[string]*knowledge.Unit)}
}

// Save inserts or replaces a unit. The store keeps its own copy, so later
// mutations by the caller do not leak into stored state.
func (s *KnowledgeStore) Save(ctx context.Context, unit *knowledge.Unit) error {
	if unit == nil || unit.ID == "" {
		return apperrors.Validation("unit must have an id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.units[unit.ID] = unit.Clone()
	return nil
}

// FindByID returns a copy of the unit with the given ID.
func (s *KnowledgeStore) FindByID(ctx context.Context, id string) (*knowledge.Unit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	unit, ok := s.units[id]
	if !ok {
		return nil, apperrors.NotFound("knowledge unit %q not found", id)
	}
	return unit.Clone(), nil
}

// FindAll returns copies of every stored unit.
func (s *KnowledgeStore) FindAll(ctx context.Context) ([]*knowledge.Unit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	units := make([]*knowledge.Unit, 0, len(s.units))
	for _, unit := range s.units {
		units = append(units, unit.Clone())
	}
	return units, nil
}

// Delete removes the unit with the given ID.
func (s *KnowledgeStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.units[id]; !ok {
		return apperrors.NotFound("knowledge unit %q not found", id)
	}
	delete(s.units, id)
	return nil
}

// Len reports the number of stored units.
func (s *KnowledgeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.units)
}
