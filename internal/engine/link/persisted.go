package link

import (
	"context"
	"net/http"

	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/core/ports"
)

const persistedQueryVersion = 1

// PersistedQuery sends precompiled documents by hash instead of text.
// Hashed queries switch to GET so that the edge can cache them; mutations stay on POST.
type PersistedQuery struct {
	classifier ports.QueryClassifier
}

// NewPersistedQuery creates a PersistedQuery stage.
func NewPersistedQuery(classifier ports.QueryClassifier) *PersistedQuery {
	return &PersistedQuery{classifier: classifier}
}

// Name implements Stage.
func (s *PersistedQuery) Name() string { return "persisted-query" }

// Apply implements Stage.
func (s *PersistedQuery) Apply(_ context.Context, op *domain.Operation) error {
	if op.Document == nil || op.Document.ID == "" {
		return nil
	}

	assets, err := s.classifier.Classify(op.Document, op.OperationName)
	if err != nil {
		return err
	}

	op.Context.QueryHash = op.Document.ID
	op.Context.IncludeQuery = false
	if op.Extensions == nil {
		op.Extensions = make(map[string]any)
	}
	op.Extensions["persistedQuery"] = map[string]any{
		"version":    persistedQueryVersion,
		"sha256Hash": op.Document.ID,
	}
	if domain.EqualFold(assets.OperationType, domain.OperationQuery) {
		op.Context.Method = http.MethodGet
	}
	return nil
}
