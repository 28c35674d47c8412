// Package errorstore keeps the operation ids of failed GraphQL operations.
package errorstore

import (
	"slices"
	"sync"

	"go.trai.ch/render/internal/core/ports"
)

var _ ports.GraphQLErrorStore = (*Store)(nil)

// Store implements ports.GraphQLErrorStore in memory.
type Store struct {
	mu   sync.Mutex
	seen map[string]struct{}
	ids  []string
}

// New creates an empty Store.
func New() *Store {
	return &Store{seen: make(map[string]struct{})}
}

// Add records operation ids, skipping empty and already known ones.
func (s *Store) Add(operationIDs ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range operationIDs {
		if id == "" {
			continue
		}
		if _, ok := s.seen[id]; ok {
			continue
		}
		s.seen[id] = struct{}{}
		s.ids = append(s.ids, id)
	}
}

// OperationIDs returns a copy of the recorded ids in insertion order.
func (s *Store) OperationIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.ids)
}
