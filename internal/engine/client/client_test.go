package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/core/ports"
	"go.trai.ch/render/internal/core/ports/mocks"
	"go.trai.ch/render/internal/engine/client"
	"go.uber.org/mock/gomock"
)

func TestClient_Execute(t *testing.T) {
	f := newRegistryFixture(t)
	f.metrics.EXPECT().ClientCreated("store/master")
	f.metrics.EXPECT().OperationDispatched("public", http.MethodPost, nil)

	rt := &domain.RenderRuntime{Account: "store", Workspace: "master", AppsEtag: "e", Locale: "en-US"}
	c := f.getClient(rt, nil)

	f.transport.EXPECT().Dispatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, op *domain.Operation) (*domain.Response, error) {
			_, err := uuid.Parse(op.ID)
			assert.NoError(t, err)
			assert.Equal(t, "Product", op.OperationName)
			assert.Equal(t, map[string]any{"slug": "shoe"}, op.Variables)
			assert.Equal(t, "https://api.example/_v/public/graphql/v1?workspace=master&maxAge=long&appsEtag=e&domain=&locale=en-US", op.Context.URI)
			assert.True(t, op.Context.IncludeQuery, "server side requests send the document text")
			assert.NotEmpty(t, op.Context.SessionID)
			assert.Same(t, rt, op.Context.Runtime)
			return &domain.Response{
				StatusCode: http.StatusOK,
				Data:       json.RawMessage(`{"product":{"__typename":"vtex_store_2_0_0_Product","cacheId":"shoe"}}`),
			}, nil
		})

	result, err := c.Execute(t.Context(), client.Request{
		Document:      &domain.Document{Name: "product.graphql", Text: "query Product($slug: String) { product(slug: $slug) { cacheId } }", ID: "h1"},
		OperationName: "Product",
		Variables:     map[string]any{"slug": "shoe", "__typename": "Input"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.Response.StatusCode)
	assert.Equal(t, "h1", result.Operation.Context.QueryHash)

	_, ok := c.Cache().Get("vtex.store@2.x:Product:shoe")
	assert.True(t, ok)
}

func TestClient_Execute_RecordsGraphQLErrors(t *testing.T) {
	f := newRegistryFixture(t)
	f.metrics.EXPECT().ClientCreated(gomock.Any())
	f.metrics.EXPECT().OperationDispatched("private", http.MethodPost, gomock.Not(nil))

	c := f.getClient(&domain.RenderRuntime{Account: "store", Workspace: "master"}, nil)

	resp := &domain.Response{
		StatusCode: http.StatusInternalServerError,
		Errors:     []domain.GraphQLError{{Message: "boom", Extensions: map[string]any{"operationId": "op-9"}}},
	}
	f.transport.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(resp, domain.ErrUnexpectedStatus)
	f.errors.EXPECT().Add("op-9")

	result, err := c.Execute(t.Context(), client.Request{
		Document: &domain.Document{Name: "save.graphql", Text: "mutation Save { save }", ID: "h2"},
	})
	require.ErrorIs(t, err, domain.ErrUnexpectedStatus)
	assert.Same(t, resp, result.Response)
}

func TestClient_Execute_UnhashableQuery(t *testing.T) {
	f := newRegistryFixture(t)
	f.metrics.EXPECT().ClientCreated(gomock.Any())
	f.metrics.EXPECT().OperationDispatched("", "", domain.ErrUnhashableQuery)
	f.transport.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(0)

	c := f.getClient(&domain.RenderRuntime{Account: "store", Workspace: "master"}, nil)

	_, err := c.Execute(t.Context(), client.Request{Document: domain.NewInlineDocument("query { a }")})
	require.ErrorIs(t, err, domain.ErrUnhashableQuery)
}

func TestClient_Execute_Traces(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	transport := mocks.NewMockTransport(ctrl)
	metrics := mocks.NewMockMetrics(ctrl)

	metrics.EXPECT().ClientCreated(gomock.Any())
	metrics.EXPECT().OperationDispatched(gomock.Any(), gomock.Any(), gomock.Any())
	transport.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	tracer.EXPECT().Start(gomock.Any(), "graphql Product", gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, opts ...ports.SpanOption) (context.Context, ports.Span) {
			cfg := ports.NewSpanConfig(opts...)
			assert.Equal(t, "store/master", cfg.Attributes["render.workspace"])
			return ctx, span
		})
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().RecordError(assert.AnError)
	span.EXPECT().End()

	registry := client.NewRegistry(transport, newClassifier(), mocks.NewMockGraphQLErrorStore(ctrl), tracer, metrics)
	rt := &domain.RenderRuntime{Account: "store", Workspace: "master", Production: true}
	c := registry.GetClient(rt, "api.example", newRuntimeContext(rt), newSessionStage(), nil)

	_, err := c.Execute(t.Context(), client.Request{
		Document:      &domain.Document{Text: "query Product { a }", ID: "h"},
		OperationName: "Product",
	})
	require.ErrorIs(t, err, assert.AnError)
}

func TestClient_Shape(t *testing.T) {
	f := newRegistryFixture(t)
	f.metrics.EXPECT().ClientCreated(gomock.Any())
	f.transport.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(0)

	c := f.getClient(&domain.RenderRuntime{Account: "store", Workspace: "master", Browser: true, Host: "localhost:3000"}, nil)

	op, err := c.Shape(t.Context(), client.Request{
		Document: &domain.Document{Text: "query Q { a }", ID: "h3"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, op.Context.Method)
	assert.Equal(t, "http://api.example/_v/public/graphql/v1?workspace=master&maxAge=long&appsEtag=&domain=&locale=", op.Context.URI)
	assert.Equal(t, map[string]any{"version": 1, "sha256Hash": "h3"}, op.Extensions["persistedQuery"])
}
