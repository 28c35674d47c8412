package ports

import "go.trai.ch/render/internal/core/domain"

// DocumentLoader resolves precompiled GraphQL documents.
//
//go:generate mockgen -source=documents.go -destination=mocks/mock_documents.go -package=mocks
type DocumentLoader interface {
	// Load reads the named document below dir and assigns its content hash.
	// Absolute names are read as is.
	Load(dir, name string) (*domain.Document, error)
	// List returns the names of all documents below dir, sorted.
	List(dir string) ([]string, error)
}
