// Package app implements the application layer for render.
package app

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/render/internal/adapters/history"   //nolint:depguard // Wired in app layer
	"go.trai.ch/render/internal/adapters/session"   //nolint:depguard // Wired in app layer
	"go.trai.ch/render/internal/adapters/state"     //nolint:depguard // Wired in app layer
	"go.trai.ch/render/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/core/ports"
	"go.trai.ch/render/internal/engine/client"
	"go.trai.ch/render/internal/engine/link"
	"go.trai.ch/render/internal/engine/navigation"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// MetricsRecorder is a ports.Metrics that can dump its values to a file.
type MetricsRecorder interface {
	ports.Metrics
	WriteTextfile(path string) error
}

// SessionFactory creates the session ensurer for a session endpoint.
type SessionFactory func(endpoint string) ports.SessionEnsurer

// StateStoreFactory opens the state store at path.
type StateStoreFactory func(path string) (ports.StateStore, error)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	documents    ports.DocumentLoader
	classifier   ports.QueryClassifier
	transport    ports.Transport
	errorStore   ports.GraphQLErrorStore
	tracer       ports.Tracer
	metrics      MetricsRecorder
	logger       ports.Logger

	newSession    SessionFactory
	newStateStore StateStoreFactory

	registryOnce sync.Once
	registry     *client.Registry
	// cacheControl folds the responses of every operation the app sends, the way
	// the operations of one page render are folded into the page's header.
	cacheControl *domain.PageCacheControl
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	documents ports.DocumentLoader,
	classifier ports.QueryClassifier,
	transport ports.Transport,
	errorStore ports.GraphQLErrorStore,
	tracer ports.Tracer,
	metrics MetricsRecorder,
	log ports.Logger,
) *App {
	return &App{
		configLoader:  loader,
		documents:     documents,
		classifier:    classifier,
		transport:     transport,
		errorStore:    errorStore,
		tracer:        tracer,
		metrics:       metrics,
		logger:        log,
		newSession:    func(endpoint string) ports.SessionEnsurer { return session.New(endpoint) },
		newStateStore: func(path string) (ports.StateStore, error) { return state.NewStore(path) },
		cacheControl:  domain.NewPageCacheControl(),
	}
}

// WithSessionFactory replaces how session ensurers are created.
// This is primarily used for testing.
func (a *App) WithSessionFactory(f SessionFactory) *App {
	a.newSession = f
	return a
}

// WithStateStoreFactory replaces how state stores are opened.
// This is primarily used for testing.
func (a *App) WithStateStoreFactory(f StateStoreFactory) *App {
	a.newStateStore = f
	return a
}

// EnableTracing prints every finished span through the logger.
// It must be called before the first query.
func (a *App) EnableTracing() {
	provider := telemetry.NewProvider(telemetry.NewLogExporter(a.logger))
	a.tracer = telemetry.NewOTelTracerWithProvider(provider, telemetry.InstrumentationName)
}

// WriteMetrics writes the collected metrics to path.
func (a *App) WriteMetrics(path string) error {
	return a.metrics.WriteTextfile(path)
}

// OperationIDs returns the server operation ids of failed GraphQL operations so far.
func (a *App) OperationIDs() []string {
	return a.errorStore.OperationIDs()
}

// clients returns the process wide client registry.
func (a *App) clients() *client.Registry {
	a.registryOnce.Do(func() {
		a.registry = client.NewRegistry(a.transport, a.classifier, a.errorStore, a.tracer, a.metrics)
	})
	return a.registry
}

func (a *App) loadConfig(path string) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

func (a *App) loadDocument(cfg *domain.Config, ref DocumentRef) (*domain.Document, error) {
	if ref.Inline {
		return domain.NewInlineDocument(ref.Source), nil
	}
	return a.documents.Load(cfg.DocumentsDir, ref.Source)
}

// DocumentRef names the document of an operation.
type DocumentRef struct {
	// Source is a document name relative to the documents directory, or the query
	// text itself when Inline is set.
	Source string
	Inline bool
}

// QueryOptions configures Query and Shape.
type QueryOptions struct {
	ConfigPath    string
	Document      DocumentRef
	OperationName string
	Variables     map[string]any
}

// QueryResult is the outcome of Query.
type QueryResult struct {
	*client.Result
	// CacheControl is the Cache-Control header the page would be served with.
	CacheControl string
}

// Query sends one operation through the workspace client.
//
// When a state file is configured the client cache is restored from the state saved
// for the current session before the request and saved back afterwards.
func (a *App) Query(ctx context.Context, opts QueryOptions) (*QueryResult, error) {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	doc, err := a.loadDocument(cfg, opts.Document)
	if err != nil {
		return nil, err
	}

	page, err := a.openPage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	result, err := page.client.Execute(ctx, client.Request{
		Document:      doc,
		OperationName: opts.OperationName,
		Variables:     opts.Variables,
	})
	if err != nil {
		return &QueryResult{Result: result, CacheControl: a.cacheControl.String()}, err
	}

	if err := page.save(); err != nil {
		return nil, err
	}
	return &QueryResult{Result: result, CacheControl: a.cacheControl.String()}, nil
}

// PageOperation is one operation of a page render.
type PageOperation struct {
	Document      DocumentRef
	OperationName string
	Variables     map[string]any
}

// PageOptions configures RenderPage.
type PageOptions struct {
	ConfigPath string
	Operations []PageOperation
	// Concurrency bounds the operations in flight; zero means no bound.
	Concurrency int
}

// PageResult is the outcome of RenderPage.
type PageResult struct {
	// Results are in the order of the operations.
	Results []*client.Result
	// CacheControl is the Cache-Control header the page would be served with.
	CacheControl string
	// State is the client cache the page hands over for hydration.
	State domain.CacheState
}

// RenderPage sends the operations of one page concurrently through the workspace
// client and folds their responses the way a server render does.
// The first failing operation cancels the rest.
func (a *App) RenderPage(ctx context.Context, opts PageOptions) (*PageResult, error) {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	requests := make([]client.Request, len(opts.Operations))
	for i, op := range opts.Operations {
		doc, err := a.loadDocument(cfg, op.Document)
		if err != nil {
			return nil, err
		}
		requests[i] = client.Request{Document: doc, OperationName: op.OperationName, Variables: op.Variables}
	}

	page, err := a.openPage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	results := make([]*client.Result, len(requests))
	g, gctx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}
	for i, req := range requests {
		g.Go(func() error {
			result, err := page.client.Execute(gctx, req)
			results[i] = result
			return err
		})
	}

	result := &PageResult{Results: results}
	if err := g.Wait(); err != nil {
		result.CacheControl = a.cacheControl.String()
		return result, err
	}

	if err := page.save(); err != nil {
		return nil, err
	}
	result.CacheControl = a.cacheControl.String()
	result.State = a.clients().State(&cfg.Runtime)
	return result, nil
}

// page is the workspace client of one render together with the state store
// it hydrates from, if any.
type page struct {
	app       *App
	runtime   *domain.RenderRuntime
	client    *client.Client
	store     ports.StateStore
	sessionID string
}

// openPage returns the workspace client, restored from the saved state of the
// current session when a state file is configured.
func (a *App) openPage(ctx context.Context, cfg *domain.Config) (*page, error) {
	rt := &cfg.Runtime
	sessions := a.newSession(cfg.SessionEndpoint)
	p := &page{
		app:     a,
		runtime: rt,
		client:  a.clients().GetClient(
			rt,
			baseURI(cfg),
			link.NewRuntimeContext(rt, cfg.Headers),
			link.NewEnsureSession(sessions),
			a.cacheControl,
		),
	}

	store, sessionID, err := a.hydrate(ctx, cfg, sessions, p.client)
	if err != nil {
		return nil, err
	}
	p.store = store
	p.sessionID = sessionID
	return p, nil
}

// save persists the client cache for the session, if a state file is configured.
func (p *page) save() error {
	if p.store == nil {
		return nil
	}
	return p.store.Put(p.sessionID, p.app.clients().State(p.runtime))
}

func (a *App) hydrate(
	ctx context.Context,
	cfg *domain.Config,
	sessions ports.SessionEnsurer,
	c *client.Client,
) (ports.StateStore, string, error) {
	if cfg.StateFile == "" {
		return nil, "", nil
	}

	store, err := a.newStateStore(cfg.StateFile)
	if err != nil {
		return nil, "", err
	}

	sessionID, err := sessions.EnsureSession(ctx)
	if err != nil {
		return nil, "", err
	}

	saved, err := store.Get(sessionID)
	if err != nil {
		return nil, "", err
	}
	if saved != nil {
		c.Restore(saved)
		a.logger.Info(fmt.Sprintf("restored %d cached entities for session %s", len(saved), sessionID))
	}
	return store, sessionID, nil
}

// Shape runs the pipeline for an operation without sending it.
// Sessions are minted locally so that nothing reaches the network.
func (a *App) Shape(ctx context.Context, opts QueryOptions) (*domain.Operation, error) {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	doc, err := a.loadDocument(cfg, opts.Document)
	if err != nil {
		return nil, err
	}

	rt := &cfg.Runtime
	registry := client.NewRegistry(a.transport, a.classifier, a.errorStore, telemetry.NewNoOpTracer(), a.metrics)
	c := registry.GetClient(
		rt,
		baseURI(cfg),
		link.NewRuntimeContext(rt, cfg.Headers),
		link.NewEnsureSession(session.New("")),
		nil,
	)

	return c.Shape(ctx, client.Request{
		Document:      doc,
		OperationName: opts.OperationName,
		Variables:     opts.Variables,
	})
}

// ListDocuments returns the names of the precompiled documents.
func (a *App) ListDocuments(configPath string) ([]string, error) {
	cfg, err := a.loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return a.documents.List(cfg.DocumentsDir)
}

// NavigateOptions configures Navigate.
type NavigateOptions struct {
	ConfigPath string
	// Requests are performed in order against the same runtime.
	Requests []domain.NavigationRequest
}

// NavigationOutcome is the result of one navigation request.
type NavigationOutcome struct {
	Request   domain.NavigationRequest
	Navigated bool
	// Location is the current history location after the request.
	Location domain.Location
	// Assigned is set when the request caused a full page load.
	Assigned string
}

// Navigate performs the requests in order and reports what each one did.
func (a *App) Navigate(ctx context.Context, opts NavigateOptions) ([]NavigationOutcome, error) {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	rt := &cfg.Runtime
	hist := history.New(domain.Location{Pathname: "/"})
	window := history.NewWindow()
	navigator := navigation.New(rt.Pages, hist, window, a.logger, a.metrics)
	ctx = WithRuntime(ctx, NewRuntime(rt, navigator, hist, a.clients()))

	outcomes := make([]NavigationOutcome, 0, len(opts.Requests))
	for _, req := range opts.Requests {
		before := len(window.Assigned())

		navigated, err := navigate(ctx, req)
		if err != nil {
			return outcomes, err
		}

		outcome := NavigationOutcome{Request: req, Navigated: navigated, Location: hist.Location()}
		if assigned := window.Assigned(); len(assigned) > before {
			outcome.Assigned = assigned[len(assigned)-1]
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// navigate performs req through the runtime found in ctx.
func navigate(ctx context.Context, req domain.NavigationRequest) (bool, error) {
	r, err := FromContext(ctx)
	if err != nil {
		return false, err
	}
	return r.Navigate(req)
}

// baseURI falls back to the store host when no GraphQL host is configured.
func baseURI(cfg *domain.Config) string {
	if cfg.Runtime.BaseURI != "" {
		return cfg.Runtime.BaseURI
	}
	return cfg.Runtime.Host
}
