package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/render/internal/adapters/errorstore"
	"go.trai.ch/render/internal/adapters/graphql"
	"go.trai.ch/render/internal/adapters/history"
	"go.trai.ch/render/internal/adapters/telemetry"
	"go.trai.ch/render/internal/app"
	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/core/ports/mocks"
	"go.trai.ch/render/internal/engine/client"
	"go.trai.ch/render/internal/engine/navigation"
	"go.uber.org/mock/gomock"
)

func newRuntime(t *testing.T, rt *domain.RenderRuntime) (*app.Runtime, *history.History) {
	t.Helper()
	ctrl := gomock.NewController(t)
	metrics := mocks.NewMockMetrics(ctrl)
	metrics.EXPECT().NavigationAccepted().AnyTimes()
	metrics.EXPECT().NavigationDeduplicated().AnyTimes()

	hist := history.New(domain.Location{Pathname: "/"})
	navigator := navigation.New(rt.Pages, hist, history.NewWindow(), mocks.NewMockLogger(ctrl), metrics)
	registry := client.NewRegistry(
		mocks.NewMockTransport(ctrl),
		graphql.NewClassifier(),
		errorstore.New(),
		telemetry.NewNoOpTracer(),
		metrics,
	)
	return app.NewRuntime(rt, navigator, hist, registry), hist
}

func TestFromContext(t *testing.T) {
	_, err := app.FromContext(context.Background())
	require.ErrorIs(t, err, domain.ErrRuntimeNotFound)

	r, _ := newRuntime(t, &domain.RenderRuntime{Account: "store", Workspace: "master"})
	got, err := app.FromContext(app.WithRuntime(context.Background(), r))
	require.NoError(t, err)
	assert.Same(t, r, got)
}

func TestRuntime_Navigate(t *testing.T) {
	r, hist := newRuntime(t, &domain.RenderRuntime{
		Account:   "store",
		Workspace: "master",
		Pages:     domain.Pages{"page": {Path: "/page/:id"}},
	})

	ok, err := r.Navigate(domain.NavigationRequest{Page: "page", Params: map[string]string{"id": "a"}})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Navigate(domain.NavigationRequest{Page: "page", Params: map[string]string{"id": "a"}})
	require.NoError(t, err)
	assert.False(t, ok)

	h, err := r.History()
	require.NoError(t, err)
	assert.Same(t, hist, h)
	assert.Equal(t, "/page/a", h.Location().String())
	assert.Empty(t, r.State())
}

func TestRuntime_AMP(t *testing.T) {
	r, _ := newRuntime(t, &domain.RenderRuntime{Account: "store", Workspace: "master", AMP: true})

	_, err := r.Navigate(domain.NavigationRequest{To: "/"})
	require.ErrorIs(t, err, domain.ErrUnavailableInAMP)

	_, err = r.History()
	require.ErrorIs(t, err, domain.ErrUnavailableInAMP)
	assert.True(t, r.Config().AMP)
}
