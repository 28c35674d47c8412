package ports

// DocumentHasher defines the interface for computing document hashes.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type DocumentHasher interface {
	// Hash returns the deterministic content hash of a GraphQL document.
	Hash(text string) string
}
