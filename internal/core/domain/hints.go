package domain

import "strings"

// Cache scopes.
const (
	ScopePublic  = "public"
	ScopePrivate = "private"
)

// Defaults applied to any hint field left unset.
const (
	DefaultMaxAge  = "long"
	DefaultScope   = ScopePublic
	DefaultVersion = 1
)

// CacheHint tells the edge how a query response may be cached.
// Empty fields mean "not specified".
type CacheHint struct {
	MaxAge  string `json:"maxAge,omitempty" yaml:"maxAge"`
	Scope   string `json:"scope,omitempty" yaml:"scope"`
	Version int    `json:"version,omitempty" yaml:"version"`
}

// CacheHints maps a document hash to its hint.
type CacheHints map[string]CacheHint

// Lookup returns the hint registered for hash.
func (h CacheHints) Lookup(hash string) (CacheHint, bool) {
	if hash == "" || h == nil {
		return CacheHint{}, false
	}
	hint, ok := h[hash]
	return hint, ok
}

// QueryAssets is what a single pass over a query document yields.
type QueryAssets struct {
	// OperationType is "query", "mutation" or "subscription"; "mutation" when no operation was found.
	OperationType string
	// Scope is the value of the last @context(scope: ...) directive, if any.
	Scope string
	// Providers lists the values of @context(provider: ...) directives in document order.
	Providers []string
}

// ResolvedHints is the final caching decision for one operation.
type ResolvedHints struct {
	MaxAge        string
	Scope         string
	Version       int
	OperationType string
}

// IsPrivateQuery reports whether the decision is a query that must not be cached publicly.
func (r ResolvedHints) IsPrivateQuery() bool {
	return EqualFold(r.Scope, ScopePrivate) && EqualFold(r.OperationType, OperationQuery)
}

// ResolveHints combines the assets of a document with the hint matched by its hash.
//
// Queries use the matched hint when there is one, otherwise the scope declared in the
// document. Every other operation type is forced to private, keeping any matched
// max-age and version.
func ResolveHints(assets QueryAssets, matched *CacheHint) ResolvedHints {
	var hint CacheHint
	if EqualFold(assets.OperationType, OperationQuery) {
		if matched != nil {
			hint = *matched
		} else {
			hint = CacheHint{Scope: assets.Scope}
		}
	} else {
		if matched != nil {
			hint = *matched
		}
		hint.Scope = ScopePrivate
	}

	if hint.MaxAge == "" {
		hint.MaxAge = DefaultMaxAge
	}
	if hint.Scope == "" {
		hint.Scope = DefaultScope
	}
	if hint.Version == 0 {
		hint.Version = DefaultVersion
	}

	return ResolvedHints{
		MaxAge:        strings.ToLower(hint.MaxAge),
		Scope:         strings.ToLower(hint.Scope),
		Version:       hint.Version,
		OperationType: assets.OperationType,
	}
}

// EqualFold compares two non-empty strings case-insensitively.
// Two empty strings are not equal.
func EqualFold(a, b string) bool {
	return a != "" && b != "" && strings.EqualFold(a, b)
}
