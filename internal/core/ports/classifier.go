package ports

import "go.trai.ch/render/internal/core/domain"

// QueryClassifier extracts the caching-relevant facts of a GraphQL document.
//
//go:generate mockgen -source=classifier.go -destination=mocks/mock_classifier.go -package=mocks
type QueryClassifier interface {
	// Classify walks the document once and returns its operation type and @context arguments.
	// When operationName is set, only that operation is considered.
	Classify(doc *domain.Document, operationName string) (domain.QueryAssets, error)
}
