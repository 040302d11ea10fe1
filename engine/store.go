package engine

import (
	"sync"

	"github.com/lixenwraith/viewfit/core"
)

// AnyStore is the type-erased store interface used for uniform entity
// lifecycle operations across all component stores
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Clear()
}

// Store is a generic container for a specific component type T
// Uses sparse set pattern for cache-friendly iteration
//
// Every Set stamps the entity with the store's monotonic clock. Change
// detectors compare stamps against a last-seen snapshot to find components
// mutated since their previous observation; multiple mutations between
// observations collapse into a single stamp difference. The clock never
// resets, so removing and re-adding a component still reads as a change
type Store[T any] struct {
	mu         sync.RWMutex
	components map[core.Entity]T
	versions   map[core.Entity]uint64
	clock      uint64
	entities   []core.Entity // Entities that have this component
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		versions:   make(map[core.Entity]uint64),
		entities:   make([]core.Entity, 0, 16),
	}
}

// Set inserts or updates a component for an entity and stamps its version
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
	s.clock++
	s.versions[e] = s.clock
}

// Get retrieves a component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.components[e]
	return val, ok
}

// Version returns the store clock value stamped by the entity's last Set
// Always positive; returns false if the entity has no component
func (s *Store[T]) Version(e core.Entity) (uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.versions[e]
	return v, ok
}

// Remove deletes a component from an entity
func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; exists {
		delete(s.components, e)
		delete(s.versions, e)
		// Swap-remove from entities slice
		for i, entity := range s.entities {
			if entity == e {
				s.entities[i] = s.entities[len(s.entities)-1]
				s.entities = s.entities[:len(s.entities)-1]
				break
			}
		}
	}
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.components[e]
	return ok
}

// Entities returns all entities with this component type
func (s *Store[T]) Entities() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = make(map[core.Entity]T)
	s.versions = make(map[core.Entity]uint64)
	s.entities = make([]core.Entity, 0, 16)
}
