package ports

import "go.trai.ch/render/internal/core/domain"

// StateStore persists extracted client state per session.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StateStore interface {
	// Get retrieves the state saved for a session.
	// Returns nil, nil if not found.
	Get(sessionID string) (domain.CacheState, error)

	// Put stores the state of a session, replacing any previous one.
	Put(sessionID string, state domain.CacheState) error
}
