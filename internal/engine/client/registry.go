package client

import (
	"sync"
	"sync/atomic"

	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/core/ports"
	"go.trai.ch/render/internal/engine/link"
)

// Registry hands out one Client per account and workspace.
// Clients are built on first use and live as long as the registry.
type Registry struct {
	transport  ports.Transport
	classifier ports.QueryClassifier
	errorStore ports.GraphQLErrorStore
	tracer     ports.Tracer
	metrics    ports.Metrics

	mu      sync.Mutex
	clients map[string]*slot
}

// slot builds its client exactly once, even when callers race for it.
type slot struct {
	once   sync.Once
	client atomic.Pointer[Client]
}

// NewRegistry creates an empty Registry whose clients share the given dependencies.
func NewRegistry(
	transport ports.Transport,
	classifier ports.QueryClassifier,
	errorStore ports.GraphQLErrorStore,
	tracer ports.Tracer,
	metrics ports.Metrics,
) *Registry {
	return &Registry{
		transport:  transport,
		classifier: classifier,
		errorStore: errorStore,
		tracer:     tracer,
		metrics:    metrics,
		clients:    make(map[string]*slot),
	}
}

// GetClient returns the client of the runtime's workspace, building it on first use.
//
// The pipeline is, in order: error capture, typename stripping, version splitting,
// runtimeContext, ensureSession, persisted queries (browser only), URI switching,
// page cache control (when cacheControl is set) and the transport.
// Arguments of later calls for the same workspace are ignored.
func (r *Registry) GetClient(
	rt *domain.RenderRuntime,
	baseURI string,
	runtimeContext link.Stage,
	ensureSession link.Stage,
	cacheControl *domain.PageCacheControl,
) *Client {
	key := rt.WorkspaceKey()

	r.mu.Lock()
	s, ok := r.clients[key]
	if !ok {
		s = &slot{}
		r.clients[key] = s
	}
	r.mu.Unlock()

	s.once.Do(func() {
		stages := []link.Stage{
			link.NewErrorCapture(r.errorStore),
			link.NewOmitTypename(),
			link.NewVersionSplitter(r.classifier),
			runtimeContext,
			ensureSession,
		}
		if rt.Browser {
			stages = append(stages, link.NewPersistedQuery(r.classifier))
		}
		stages = append(stages, link.NewURISwitch(baseURI, rt, r.classifier))
		if cacheControl != nil {
			stages = append(stages, link.NewCacheControl(cacheControl))
		}

		s.client.Store(newClient(key, link.New(r.transport, stages...), r.tracer, r.metrics))
		r.metrics.ClientCreated(key)
	})

	return s.client.Load()
}

// State returns the extracted cache of the runtime's workspace client,
// or an empty state when no client was built yet.
func (r *Registry) State(rt *domain.RenderRuntime) domain.CacheState {
	r.mu.Lock()
	s, ok := r.clients[rt.WorkspaceKey()]
	r.mu.Unlock()

	if !ok {
		return domain.CacheState{}
	}
	c := s.client.Load()
	if c == nil {
		return domain.CacheState{}
	}
	return c.Extract()
}
