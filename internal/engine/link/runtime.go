package link

import (
	"context"

	"go.trai.ch/render/internal/core/domain"
)

// RuntimeContext attaches the render runtime and the static request headers.
type RuntimeContext struct {
	runtime *domain.RenderRuntime
	headers map[string]string
}

// NewRuntimeContext creates a RuntimeContext for runtime.
func NewRuntimeContext(runtime *domain.RenderRuntime, headers map[string]string) *RuntimeContext {
	return &RuntimeContext{runtime: runtime, headers: headers}
}

// Name implements Stage.
func (s *RuntimeContext) Name() string { return "runtime-context" }

// Apply implements Stage.
func (s *RuntimeContext) Apply(_ context.Context, op *domain.Operation) error {
	op.Context.Runtime = s.runtime
	for key, value := range s.headers {
		op.Context.SetHeader(key, value)
	}
	if s.runtime.Locale != "" && op.Context.Headers.Get("Accept-Language") == "" {
		op.Context.SetHeader("Accept-Language", s.runtime.Locale)
	}
	return nil
}
