package link

import (
	"context"

	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/core/ports"
)

// ErrorCapture records the server operation ids of GraphQL errors.
// It must be the first stage so that it observes every failure downstream.
type ErrorCapture struct {
	store ports.GraphQLErrorStore
}

// NewErrorCapture creates an ErrorCapture writing to store.
func NewErrorCapture(store ports.GraphQLErrorStore) *ErrorCapture {
	return &ErrorCapture{store: store}
}

// Name implements Stage.
func (s *ErrorCapture) Name() string { return "error-capture" }

// Apply implements Stage.
func (s *ErrorCapture) Apply(context.Context, *domain.Operation) error { return nil }

// Observe implements Observer.
func (s *ErrorCapture) Observe(_ context.Context, _ *domain.Operation, resp *domain.Response, _ error) {
	if resp == nil || len(resp.Errors) == 0 {
		return
	}
	ids := make([]string, 0, len(resp.Errors))
	for _, e := range resp.Errors {
		if id := e.OperationID(); id != "" {
			ids = append(ids, id)
		}
	}
	s.store.Add(ids...)
}
