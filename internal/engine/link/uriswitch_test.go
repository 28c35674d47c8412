package link_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/render/internal/adapters/graphql"
	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/engine/link"
)

func testRuntime() *domain.RenderRuntime {
	return &domain.RenderRuntime{
		Account:    "store",
		Workspace:  "master",
		AppsEtag:   "etag1",
		Domain:     "store",
		Locale:     "en-US",
		CacheHints: domain.CacheHints{
			"q-hinted":  {MaxAge: "SHORT", Scope: "Public", Version: 2},
			"q-private": {Scope: "private"},
			"m-hinted":  {MaxAge: "medium", Scope: "public", Version: 3},
		},
	}
}

func TestURISwitch(t *testing.T) {
	tests := []struct {
		name        string
		doc         *domain.Document
		production  bool
		ctx         domain.OperationContext
		wantURI     string
		wantMethod  string
		wantInclude bool
		wantScope   string
		wantOpType  string
	}{
		{
			name:       "query without hint uses defaults",
			doc:        &domain.Document{Text: "query Q { a }", ID: "q-none"},
			wantURI:    "https://api.example/_v/public/graphql/v1?workspace=master&maxAge=long&appsEtag=etag1&domain=store&locale=en-US",
			wantMethod: http.MethodPost,
			wantScope:  "public",
			wantOpType: "query",
		},
		{
			name:       "query with hint",
			doc:        &domain.Document{Text: "query Q { a }", ID: "q-hinted"},
			ctx:        domain.OperationContext{Method: http.MethodGet},
			wantURI:    "https://api.example/_v/public/graphql/v2?workspace=master&maxAge=short&appsEtag=etag1&domain=store&locale=en-US",
			wantMethod: http.MethodGet,
			wantScope:  "public",
			wantOpType: "query",
		},
		{
			name:       "declared private scope forces POST",
			doc:        &domain.Document{Text: `query Q @context(scope: "private") { a }`, ID: "q-none"},
			ctx:        domain.OperationContext{Method: http.MethodGet},
			wantURI:    "https://api.example/_v/private/graphql/v1?workspace=master&maxAge=long&appsEtag=etag1&domain=store&locale=en-US",
			wantMethod: http.MethodPost,
			wantScope:  "private",
			wantOpType: "query",
		},
		{
			name:       "private hint forces POST",
			doc:        &domain.Document{Text: "query Q { a }", ID: "q-private"},
			ctx:        domain.OperationContext{Method: http.MethodGet},
			wantURI:    "https://api.example/_v/private/graphql/v1?workspace=master&maxAge=long&appsEtag=etag1&domain=store&locale=en-US",
			wantMethod: http.MethodPost,
			wantScope:  "private",
			wantOpType: "query",
		},
		{
			name:       "mutation is private despite hint",
			doc:        &domain.Document{Text: "mutation M { a }", ID: "m-hinted"},
			ctx:        domain.OperationContext{Method: http.MethodGet},
			wantURI:    "https://api.example/_v/private/graphql/v3?workspace=master&maxAge=medium&appsEtag=etag1&domain=store&locale=en-US",
			wantMethod: http.MethodGet,
			wantScope:  "private",
			wantOpType: "mutation",
		},
		{
			name:        "included query always POSTs",
			doc:         &domain.Document{Text: "query Q { a }", ID: "q-hinted"},
			ctx:         domain.OperationContext{Method: http.MethodGet, IncludeQuery: true},
			wantURI:     "https://api.example/_v/public/graphql/v2?workspace=master&maxAge=short&appsEtag=etag1&domain=store&locale=en-US",
			wantMethod:  http.MethodPost,
			wantInclude: true,
			wantScope:   "public",
			wantOpType:  "query",
		},
		{
			name:        "inline query in production includes the text",
			doc:         domain.NewInlineDocument("{ a }"),
			production:  true,
			ctx:         domain.OperationContext{Method: http.MethodGet},
			wantURI:     "https://api.example/_v/public/graphql/v1?workspace=master&maxAge=long&appsEtag=etag1&domain=store&locale=en-US",
			wantMethod:  http.MethodPost,
			wantInclude: true,
			wantScope:   "public",
			wantOpType:  "query",
		},
		{
			name:       "document without operation is a mutation",
			doc:        &domain.Document{Text: "fragment F on T { a }", ID: "f"},
			wantURI:    "https://api.example/_v/private/graphql/v1?workspace=master&maxAge=long&appsEtag=etag1&domain=store&locale=en-US",
			wantMethod: http.MethodPost,
			wantScope:  "private",
			wantOpType: "mutation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := testRuntime()
			rt.Production = tt.production
			op := &domain.Operation{Document: tt.doc, Context: tt.ctx}

			require.NoError(t, link.NewURISwitch("api.example", rt, graphql.NewClassifier()).Apply(t.Context(), op))

			assert.Equal(t, tt.wantURI, op.Context.URI)
			assert.Equal(t, tt.wantMethod, op.Context.Method)
			assert.Equal(t, tt.wantInclude, op.Context.IncludeQuery)
			assert.Equal(t, tt.wantScope, op.Context.Hints.Scope)
			assert.Equal(t, tt.wantOpType, op.Context.Hints.OperationType)
			assert.Equal(t, tt.doc.ID, op.Context.QueryHash)
		})
	}
}

func TestBuildURI_Protocol(t *testing.T) {
	hints := domain.ResolvedHints{MaxAge: "long", Scope: "public", Version: 1}

	rt := &domain.RenderRuntime{Workspace: "master", Browser: true, Host: "localhost:3000"}
	assert.Equal(t,
		"http://localhost:3000/_v/public/graphql/v1?workspace=master&maxAge=long&appsEtag=&domain=&locale=",
		link.BuildURI(rt, "localhost:3000", hints))

	rt.Browser = false
	assert.Equal(t,
		"https://localhost:3000/_v/public/graphql/v1?workspace=master&maxAge=long&appsEtag=&domain=&locale=",
		link.BuildURI(rt, "localhost:3000", hints))

	rt.Browser = true
	rt.Host = "store.example"
	assert.Equal(t,
		"https://api.example/_v/public/graphql/v1?workspace=master&maxAge=long&appsEtag=&domain=&locale=",
		link.BuildURI(rt, "api.example", hints))
}
