package link

import (
	"context"
	"fmt"
	"net/http"

	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/core/ports"
)

// URISwitch decides how the operation may be cached and computes the endpoint
// that partitions the cache by scope, version, workspace, apps etag, domain and locale.
type URISwitch struct {
	baseURI    string
	runtime    *domain.RenderRuntime
	classifier ports.QueryClassifier
}

// NewURISwitch creates a URISwitch sending requests to baseURI.
func NewURISwitch(baseURI string, runtime *domain.RenderRuntime, classifier ports.QueryClassifier) *URISwitch {
	return &URISwitch{baseURI: baseURI, runtime: runtime, classifier: classifier}
}

// Name implements Stage.
func (s *URISwitch) Name() string { return "uri-switch" }

// Apply sets the hints, method, IncludeQuery and URI of the operation.
//
// In development a document without a hash is rejected, since hints are looked up by hash.
// Private queries always use POST, even when an earlier stage chose GET.
func (s *URISwitch) Apply(_ context.Context, op *domain.Operation) error {
	var hash string
	if op.Document != nil {
		hash = op.Document.ID
	}
	if !s.runtime.Production && hash == "" {
		return domain.ErrUnhashableQuery
	}

	assets, err := s.classifier.Classify(op.Document, op.OperationName)
	if err != nil {
		return err
	}

	var matched *domain.CacheHint
	if hint, ok := s.runtime.CacheHints.Lookup(hash); ok {
		matched = &hint
	}
	hints := domain.ResolveHints(assets, matched)

	includeQuery := op.Context.IncludeQuery || hash == ""
	method := op.Context.Method
	if includeQuery || method == "" {
		method = http.MethodPost
	}
	if hints.IsPrivateQuery() {
		method = http.MethodPost
	}

	op.Context.QueryHash = hash
	op.Context.Hints = hints
	op.Context.IncludeQuery = includeQuery
	op.Context.Method = method
	op.Context.URI = BuildURI(s.runtime, s.baseURI, hints)
	return nil
}

// BuildURI returns the GraphQL endpoint for hints.
func BuildURI(rt *domain.RenderRuntime, baseURI string, hints domain.ResolvedHints) string {
	return fmt.Sprintf("%s://%s/_v/%s/graphql/v%d?workspace=%s&maxAge=%s&appsEtag=%s&domain=%s&locale=%s",
		rt.Protocol(), baseURI, hints.Scope, hints.Version,
		rt.Workspace, hints.MaxAge, rt.AppsEtag, rt.Domain, rt.Locale,
	)
}
