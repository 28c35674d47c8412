// Package metrics implements ports.Metrics with Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.trai.ch/render/internal/core/ports"
	"go.trai.ch/zerr"
)

const namespace = "render"

var _ ports.Metrics = (*Prometheus)(nil)

// Prometheus implements ports.Metrics on its own registry.
type Prometheus struct {
	registry *prometheus.Registry

	navigations *prometheus.CounterVec
	clients     *prometheus.CounterVec
	operations  *prometheus.CounterVec
}

// New creates the counters on a fresh registry.
func New() *Prometheus {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Prometheus{
		registry: registry,
		// Labels: outcome (accepted, deduplicated)
		navigations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "navigation",
			Name:      "requests_total",
			Help:      "Navigation requests by outcome",
		}, []string{"outcome"}),
		// Labels: workspace (account/workspace)
		clients: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "graphql",
			Name:      "clients_created_total",
			Help:      "GraphQL clients created per workspace",
		}, []string{"workspace"}),
		// Labels: scope (public, private), method (GET, POST), status (ok, error)
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "graphql",
			Name:      "operations_total",
			Help:      "GraphQL operations dispatched",
		}, []string{"scope", "method", "status"}),
	}
}

// Registry exposes the registry the counters live on.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// NavigationAccepted counts a navigation that changed the location.
func (p *Prometheus) NavigationAccepted() {
	p.navigations.WithLabelValues("accepted").Inc()
}

// NavigationDeduplicated counts a navigation dropped as a repeat.
func (p *Prometheus) NavigationDeduplicated() {
	p.navigations.WithLabelValues("deduplicated").Inc()
}

// ClientCreated counts a client built for a workspace key.
func (p *Prometheus) ClientCreated(workspace string) {
	p.clients.WithLabelValues(workspace).Inc()
}

// OperationDispatched counts a GraphQL operation by scope, method and outcome.
func (p *Prometheus) OperationDispatched(scope, method string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	p.operations.WithLabelValues(scope, method, status).Inc()
}

// WriteTextfile writes the current values in the Prometheus text format to path.
func (p *Prometheus) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, p.registry); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write metrics"), "path", path)
	}
	return nil
}
