// Package documents loads precompiled GraphQL documents from disk.
package documents

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DocumentLoader = (*Loader)(nil)

// Loader implements ports.DocumentLoader.
// Documents are read once and kept for the lifetime of the loader.
type Loader struct {
	hasher ports.DocumentHasher
	walker *Walker

	mu    sync.RWMutex
	cache map[string]*domain.Document
}

// NewLoader creates a new Loader.
func NewLoader(hasher ports.DocumentHasher, walker *Walker) *Loader {
	return &Loader{
		hasher: hasher,
		walker: walker,
		cache:  make(map[string]*domain.Document),
	}
}

// Load reads the named document below dir. The .graphql extension may be omitted.
func (l *Loader) Load(dir, name string) (*domain.Document, error) {
	path := resolve(dir, name)

	l.mu.RLock()
	doc, ok := l.cache[path]
	l.mu.RUnlock()
	if ok {
		return doc, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrDocumentNotFound, err.Error()), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", path)
	}

	text := string(data)
	doc = &domain.Document{
		Name: displayName(dir, path),
		Text: text,
		ID:   l.hasher.Hash(text),
	}

	l.mu.Lock()
	l.cache[path] = doc
	l.mu.Unlock()

	return doc, nil
}

// List returns the names of all documents below dir relative to it, sorted.
func (l *Loader) List(dir string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "dir", dir)
	}

	var names []string
	for path := range l.walker.WalkDocuments(dir) {
		names = append(names, displayName(dir, path))
	}
	slices.Sort(names)
	return names, nil
}

func resolve(dir, name string) string {
	if filepath.Ext(name) != Extension {
		name += Extension
	}
	if filepath.IsAbs(name) || dir == "" {
		return filepath.Clean(name)
	}
	return filepath.Join(dir, name)
}

func displayName(dir, path string) string {
	if dir == "" {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
