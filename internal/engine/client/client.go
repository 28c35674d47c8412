// Package client implements the GraphQL client of a workspace and the registry
// that hands out one client per account and workspace.
package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/core/ports"
	"go.trai.ch/render/internal/engine/link"
)

// Request is a GraphQL operation as issued by the application.
type Request struct {
	Document      *domain.Document
	OperationName string
	Variables     map[string]any
}

// Result is the operation as it was sent together with the server response.
type Result struct {
	Operation *domain.Operation
	Response  *domain.Response
}

// Client sends operations of one workspace through its pipeline and caches the results.
type Client struct {
	key      string
	pipeline *link.Pipeline
	cache    *EntityCache
	tracer   ports.Tracer
	metrics  ports.Metrics
}

func newClient(key string, pipeline *link.Pipeline, tracer ports.Tracer, metrics ports.Metrics) *Client {
	return &Client{
		key:      key,
		pipeline: pipeline,
		cache:    NewEntityCache(),
		tracer:   tracer,
		metrics:  metrics,
	}
}

// Key returns the account/workspace key of the client.
func (c *Client) Key() string {
	return c.key
}

// Stages returns the names of the pipeline stages in order.
func (c *Client) Stages() []string {
	return c.pipeline.Stages()
}

// Cache returns the entity cache of the client.
func (c *Client) Cache() *EntityCache {
	return c.cache
}

// Execute sends req and normalizes the response into the cache.
// A response carrying GraphQL errors is returned together with the error, if any.
func (c *Client) Execute(ctx context.Context, req Request) (*Result, error) {
	op := newOperation(req)

	ctx, span := c.tracer.Start(ctx, "graphql "+operationLabel(op),
		ports.WithAttribute("graphql.operation.id", op.ID),
		ports.WithAttribute("render.workspace", c.key),
	)
	defer span.End()

	resp, err := c.pipeline.Execute(ctx, op)
	annotate(span, op)
	c.metrics.OperationDispatched(op.Context.Hints.Scope, op.Context.Method, err)

	result := &Result{Operation: op, Response: resp}
	if err != nil {
		span.RecordError(err)
		return result, err
	}

	if resp != nil {
		if err := c.cache.Write(resp.Data); err != nil {
			span.RecordError(err)
			return result, err
		}
		span.SetAttribute("graphql.errors", len(resp.Errors))
	}
	return result, nil
}

// Shape runs the pipeline without sending the operation and returns it as the
// transport would have received it.
func (c *Client) Shape(ctx context.Context, req Request) (*domain.Operation, error) {
	op := newOperation(req)
	if err := c.pipeline.Shape(ctx, op); err != nil {
		return op, err
	}
	return op, nil
}

// Extract returns the cache content for hydration.
func (c *Client) Extract() domain.CacheState {
	return c.cache.Extract()
}

// Restore loads state produced by Extract.
func (c *Client) Restore(state domain.CacheState) {
	c.cache.Restore(state)
}

func newOperation(req Request) *domain.Operation {
	return &domain.Operation{
		ID:            uuid.NewString(),
		OperationName: req.OperationName,
		Document:      req.Document,
		Variables:     req.Variables,
		Context: domain.OperationContext{
			IncludeQuery: true,
			Headers:      make(http.Header),
		},
	}
}

func operationLabel(op *domain.Operation) string {
	if op.OperationName != "" {
		return op.OperationName
	}
	if op.Document != nil {
		return op.Document.Name
	}
	return "anonymous"
}

func annotate(span ports.Span, op *domain.Operation) {
	span.SetAttribute("graphql.scope", op.Context.Hints.Scope)
	span.SetAttribute("graphql.max_age", op.Context.Hints.MaxAge)
	span.SetAttribute("graphql.version", op.Context.Hints.Version)
	span.SetAttribute("http.method", op.Context.Method)
	span.SetAttribute("http.url", op.Context.URI)
	if len(op.Context.Providers) > 0 {
		span.SetAttribute("graphql.providers", op.Context.Providers)
	}
}
