// Package state persists extracted client state between runs.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StateStore = (*Store)(nil)

// Store implements ports.StateStore using a flat JSON file keyed by session id.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.CacheState
}

// NewStore creates a new StateStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.CacheState),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and comes from the config file
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", s.path)
	}
	if s.cache == nil {
		s.cache = make(map[string]domain.CacheState)
	}

	return nil
}

func (s *Store) save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.cache, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", dir)
	}

	//nolint:gosec // Path is cleaned and comes from the config file
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}

	return nil
}

// Get retrieves the state saved for a session.
// Returns nil, nil if not found.
func (s *Store) Get(sessionID string) (domain.CacheState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.cache[sessionID]
	if !ok {
		return nil, nil
	}
	return state.Clone(), nil
}

// Put stores the state of a session and writes the file.
func (s *Store) Put(sessionID string, state domain.CacheState) error {
	s.mu.Lock()
	s.cache[sessionID] = state.Clone()
	s.mu.Unlock()

	return s.save()
}
