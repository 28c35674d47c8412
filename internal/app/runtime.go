package app

import (
	"context"

	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/core/ports"
	"go.trai.ch/render/internal/engine/client"
	"go.trai.ch/render/internal/engine/navigation"
)

// Runtime is what a rendered page can reach: its configuration, navigation and
// the GraphQL clients of its workspace. It travels through a context.Context.
type Runtime struct {
	config    *domain.RenderRuntime
	navigator *navigation.Navigator
	history   ports.History
	clients   *client.Registry
}

// NewRuntime bundles the collaborators of one render runtime.
func NewRuntime(
	config *domain.RenderRuntime,
	navigator *navigation.Navigator,
	history ports.History,
	clients *client.Registry,
) *Runtime {
	return &Runtime{
		config:    config,
		navigator: navigator,
		history:   history,
		clients:   clients,
	}
}

// Config returns the render runtime configuration.
func (r *Runtime) Config() *domain.RenderRuntime {
	return r.config
}

// Navigate performs an in-app navigation. It is unavailable on AMP pages.
func (r *Runtime) Navigate(req domain.NavigationRequest) (bool, error) {
	if r.config.AMP {
		return false, domain.ErrUnavailableInAMP
	}
	return r.navigator.Navigate(req)
}

// History returns the page history. It is unavailable on AMP pages.
func (r *Runtime) History() (ports.History, error) {
	if r.config.AMP {
		return nil, domain.ErrUnavailableInAMP
	}
	return r.history, nil
}

// State returns the cache of the workspace client for hydration.
func (r *Runtime) State() domain.CacheState {
	return r.clients.State(r.config)
}

type runtimeKey struct{}

// WithRuntime returns a context carrying r.
func WithRuntime(ctx context.Context, r *Runtime) context.Context {
	return context.WithValue(ctx, runtimeKey{}, r)
}

// FromContext returns the runtime attached by WithRuntime.
func FromContext(ctx context.Context) (*Runtime, error) {
	r, ok := ctx.Value(runtimeKey{}).(*Runtime)
	if !ok || r == nil {
		return nil, domain.ErrRuntimeNotFound
	}
	return r, nil
}
