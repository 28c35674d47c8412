package link

import (
	"context"

	"go.trai.ch/render/internal/core/domain"
)

// CacheControl folds the Cache-Control header of every response into the page's.
type CacheControl struct {
	control *domain.PageCacheControl
}

// NewCacheControl creates a CacheControl stage updating control.
func NewCacheControl(control *domain.PageCacheControl) *CacheControl {
	return &CacheControl{control: control}
}

// Name implements Stage.
func (s *CacheControl) Name() string { return "cache-control" }

// Apply implements Stage.
func (s *CacheControl) Apply(context.Context, *domain.Operation) error { return nil }

// Observe implements Observer.
func (s *CacheControl) Observe(_ context.Context, _ *domain.Operation, resp *domain.Response, _ error) {
	if resp == nil || resp.Header == nil {
		return
	}
	s.control.Update(resp.Header.Get("Cache-Control"))
}
