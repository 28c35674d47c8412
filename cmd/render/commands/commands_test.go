package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/render/cmd/render/commands"
	"go.trai.ch/render/internal/app"
	"go.trai.ch/render/internal/build"
	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/engine/client"
)

type mockApp struct {
	queryFunc      func(ctx context.Context, opts app.QueryOptions) (*app.QueryResult, error)
	renderPageFunc func(ctx context.Context, opts app.PageOptions) (*app.PageResult, error)
	shapeFunc      func(ctx context.Context, opts app.QueryOptions) (*domain.Operation, error)
	navigateFunc   func(ctx context.Context, opts app.NavigateOptions) ([]app.NavigationOutcome, error)
	listFunc       func(configPath string) ([]string, error)
	operationIDs   []string
	tracing        bool
	metricsPath    string
}

func (m *mockApp) Query(ctx context.Context, opts app.QueryOptions) (*app.QueryResult, error) {
	if m.queryFunc != nil {
		return m.queryFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockApp) RenderPage(ctx context.Context, opts app.PageOptions) (*app.PageResult, error) {
	if m.renderPageFunc != nil {
		return m.renderPageFunc(ctx, opts)
	}
	return &app.PageResult{}, nil
}

func (m *mockApp) Shape(ctx context.Context, opts app.QueryOptions) (*domain.Operation, error) {
	if m.shapeFunc != nil {
		return m.shapeFunc(ctx, opts)
	}
	return &domain.Operation{}, nil
}

func (m *mockApp) Navigate(ctx context.Context, opts app.NavigateOptions) ([]app.NavigationOutcome, error) {
	if m.navigateFunc != nil {
		return m.navigateFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockApp) ListDocuments(configPath string) ([]string, error) {
	if m.listFunc != nil {
		return m.listFunc(configPath)
	}
	return nil, nil
}

func (m *mockApp) OperationIDs() []string {
	return m.operationIDs
}

func (m *mockApp) EnableTracing() {
	m.tracing = true
}

func (m *mockApp) WriteMetrics(path string) error {
	m.metricsPath = path
	return nil
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, new(bytes.Buffer))
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func sentOperation(name string) *domain.Operation {
	return &domain.Operation{
		OperationName: name,
		Context: domain.OperationContext{
			Method: http.MethodPost,
			URI:    "https://api.example/_v/public/graphql/v1?workspace=master",
		},
	}
}

func TestCommands_Query(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.QueryOptions
		mock := &mockApp{
			queryFunc: func(_ context.Context, opts app.QueryOptions) (*app.QueryResult, error) {
				captured = opts
				return &app.QueryResult{
					Result: &client.Result{
						Operation: sentOperation("Product"),
						Response:  &domain.Response{Data: json.RawMessage(`{"product":{"cacheId":"shoe"}}`)},
					},
					CacheControl: "public, max-age=60",
				}, nil
			},
		}

		out, err := execute(t, mock, "query", "product.graphql", "-c", "store.yaml",
			"--var", "slug=shoe", "--var", "first=3", "--operation", "Product")
		require.NoError(t, err)

		assert.Equal(t, app.QueryOptions{
			ConfigPath:    "store.yaml",
			Document:      app.DocumentRef{Source: "product.graphql"},
			OperationName: "Product",
			Variables:     map[string]any{"slug": "shoe", "first": float64(3)},
		}, captured)
		assert.Contains(t, out, "https://api.example/_v/public/graphql/v1?workspace=master")
		assert.Contains(t, out, "public, max-age=60")
		assert.Contains(t, out, `"cacheId": "shoe"`)
	})

	t.Run("inline document", func(t *testing.T) {
		var captured app.QueryOptions
		mock := &mockApp{
			queryFunc: func(_ context.Context, opts app.QueryOptions) (*app.QueryResult, error) {
				captured = opts
				return nil, domain.ErrUnhashableQuery
			},
		}

		_, err := execute(t, mock, "query", "--inline", "{ a }")
		require.ErrorIs(t, err, domain.ErrUnhashableQuery)
		assert.Equal(t, app.DocumentRef{Source: "{ a }", Inline: true}, captured.Document)
		assert.Equal(t, "render.yaml", captured.ConfigPath)
	})

	t.Run("prints graphql errors before failing", func(t *testing.T) {
		mock := &mockApp{
			operationIDs: []string{"op-1"},
			queryFunc: func(_ context.Context, _ app.QueryOptions) (*app.QueryResult, error) {
				return &app.QueryResult{
					Result: &client.Result{
						Operation: sentOperation("Product"),
						Response: &domain.Response{
							Errors: []domain.GraphQLError{{Message: "boom"}},
						},
					},
				}, domain.ErrUnexpectedStatus
			},
		}

		out, err := execute(t, mock, "query", "--json", "product.graphql")
		require.ErrorIs(t, err, domain.ErrUnexpectedStatus)
		assert.JSONEq(t, `{
			"errors": [{"message": "boom"}],
			"method": "POST",
			"uri": "https://api.example/_v/public/graphql/v1?workspace=master",
			"operationIds": ["op-1"]
		}`, out)
	})

	t.Run("rejects malformed variables", func(t *testing.T) {
		mock := &mockApp{
			queryFunc: func(_ context.Context, _ app.QueryOptions) (*app.QueryResult, error) {
				panic("should not be called")
			},
		}

		_, err := execute(t, mock, "query", "product.graphql", "--var", "slug")
		require.ErrorIs(t, err, domain.ErrInvalidFlag)
	})

	t.Run("requires a document", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "query")
		require.Error(t, err)
	})
}

func TestCommands_Page(t *testing.T) {
	var captured app.PageOptions
	mock := &mockApp{
		renderPageFunc: func(_ context.Context, opts app.PageOptions) (*app.PageResult, error) {
			captured = opts
			return &app.PageResult{
				Results: []*client.Result{
					{Operation: sentOperation("Product"), Response: &domain.Response{}},
					{Operation: sentOperation("Search"), Response: &domain.Response{}},
				},
				CacheControl: "public, max-age=60",
				State:        domain.CacheState{"a": {"cacheId": "a"}},
			}, nil
		},
	}

	out, err := execute(t, mock, "page", "product.graphql", "search.graphql", "--concurrency", "1", "--state", "--json")
	require.NoError(t, err)

	assert.Equal(t, 1, captured.Concurrency)
	assert.Equal(t, []app.PageOperation{
		{Document: app.DocumentRef{Source: "product.graphql"}},
		{Document: app.DocumentRef{Source: "search.graphql"}},
	}, captured.Operations)
	assert.JSONEq(t, `{
		"cacheControl": "public, max-age=60",
		"operations": [
			{"document": "product.graphql", "method": "POST", "uri": "https://api.example/_v/public/graphql/v1?workspace=master"},
			{"document": "search.graphql", "method": "POST", "uri": "https://api.example/_v/public/graphql/v1?workspace=master"}
		],
		"state": {"a": {"cacheId": "a"}}
	}`, out)
}

func TestCommands_Shape(t *testing.T) {
	mock := &mockApp{
		shapeFunc: func(_ context.Context, opts app.QueryOptions) (*domain.Operation, error) {
			assert.Equal(t, "product.graphql", opts.Document.Source)
			op := sentOperation("Product")
			op.Context.Method = http.MethodGet
			op.Context.QueryHash = "h1"
			op.Context.Hints = domain.ResolvedHints{Scope: "public", MaxAge: "long", Version: 1}
			op.Context.Providers = []string{"vtex.store@2.x"}
			op.Context.SetHeader("Accept-Language", "en-US")
			return op, nil
		},
	}

	out, err := execute(t, mock, "shape", "product.graphql", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"operationName": "Product",
		"method": "GET",
		"uri": "https://api.example/_v/public/graphql/v1?workspace=master",
		"includeQuery": false,
		"queryHash": "h1",
		"scope": "public",
		"maxAge": "long",
		"version": 1,
		"providers": ["vtex.store@2.x"],
		"headers": {"Accept-Language": "en-US"}
	}`, out)

	out, err = execute(t, mock, "shape", "product.graphql")
	require.NoError(t, err)
	assert.Contains(t, out, "vtex.store@2.x")
	assert.Contains(t, out, "GET")
}

func TestCommands_Navigate(t *testing.T) {
	var captured app.NavigateOptions
	mock := &mockApp{
		navigateFunc: func(_ context.Context, opts app.NavigateOptions) ([]app.NavigationOutcome, error) {
			captured = opts
			return []app.NavigationOutcome{
				{Navigated: true, Location: domain.Location{Pathname: "/shoe/p"}},
				{Navigated: false, Location: domain.Location{Pathname: "/shoe/p"}},
			}, nil
		},
	}

	out, err := execute(t, mock, "navigate", "page:product", "/shoe/p", "--param", "slug=shoe", "--replace")
	require.NoError(t, err)

	require.Len(t, captured.Requests, 2)
	assert.Equal(t, domain.NavigationRequest{
		Page:    "product",
		Params:  map[string]string{"slug": "shoe"},
		Replace: true,
	}, captured.Requests[0])
	assert.Equal(t, "/shoe/p", captured.Requests[1].To)
	assert.Contains(t, out, "/shoe/p")
	assert.Contains(t, out, "deduplicated")
}

func TestCommands_Navigate_PrintsPartialOutcomes(t *testing.T) {
	mock := &mockApp{
		navigateFunc: func(_ context.Context, _ app.NavigateOptions) ([]app.NavigationOutcome, error) {
			return []app.NavigationOutcome{
				{Navigated: true, Location: domain.Location{Pathname: "/"}, Assigned: "https://other.example"},
			}, domain.ErrMissingNavigationTarget
		},
	}

	out, err := execute(t, mock, "navigate", "--json", "https://other.example", "page:")
	require.ErrorIs(t, err, domain.ErrMissingNavigationTarget)
	assert.JSONEq(t, `[
		{"target": "https://other.example", "navigated": true, "location": "/", "assigned": "https://other.example"}
	]`, out)
}

func TestCommands_Documents(t *testing.T) {
	mock := &mockApp{
		listFunc: func(configPath string) ([]string, error) {
			assert.Equal(t, "render.yaml", configPath)
			return []string{"a.graphql", "b.graphql"}, nil
		},
	}

	out, err := execute(t, mock, "documents")
	require.NoError(t, err)
	assert.Equal(t, "a.graphql\nb.graphql\n", out)

	mock.listFunc = func(string) ([]string, error) { return nil, errors.New("no documents") }
	_, err = execute(t, mock, "documents")
	require.EqualError(t, err, "no documents")
}

func TestCommands_Locator(t *testing.T) {
	out, err := execute(t, &mockApp{}, "locator", "vtex.store-graphql@2.3.1", "Product", "shoe")
	require.NoError(t, err)
	assert.Equal(t, "vtex.storegraphql@2.x:Product:shoe\n", out)

	_, err = execute(t, &mockApp{}, "locator", "store", "Product", "shoe")
	require.ErrorContains(t, err, domain.ErrInvalidAppLocator.Error())
}

func TestCommands_GlobalFlags(t *testing.T) {
	mock := &mockApp{}

	_, err := execute(t, mock, "documents", "--trace", "--metrics-out", "render.prom")
	require.NoError(t, err)
	assert.True(t, mock.tracing)
	assert.Equal(t, "render.prom", mock.metricsPath)

	mock = &mockApp{}
	_, err = execute(t, mock, "documents")
	require.NoError(t, err)
	assert.False(t, mock.tracing)
	assert.Empty(t, mock.metricsPath)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
	assert.Contains(t, out, build.Commit)
}
