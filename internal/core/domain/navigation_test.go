package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/render/internal/core/domain"
)

func TestNavigationRequest_Validate(t *testing.T) {
	require.ErrorIs(t, domain.NavigationRequest{}.Validate(), domain.ErrMissingNavigationTarget)
	require.ErrorIs(t,
		domain.NavigationRequest{Params: map[string]string{"id": "a"}}.Validate(),
		domain.ErrMissingNavigationTarget,
	)
	require.NoError(t, domain.NavigationRequest{To: "/"}.Validate())
	require.NoError(t, domain.NavigationRequest{Page: "home"}.Validate())
}

func TestNavigationRequest_SameTarget(t *testing.T) {
	tests := []struct {
		name string
		a, b domain.NavigationRequest
		want bool
	}{
		{
			name: "identical",
			a:    domain.NavigationRequest{To: "product", Params: map[string]string{"id": "a"}},
			b:    domain.NavigationRequest{To: "product", Params: map[string]string{"id": "a"}},
			want: true,
		},
		{
			name: "different to",
			a:    domain.NavigationRequest{To: "product", Params: map[string]string{"id": "a"}},
			b:    domain.NavigationRequest{To: "product2", Params: map[string]string{"id": "a"}},
			want: false,
		},
		{
			name: "added param",
			a:    domain.NavigationRequest{To: "product", Params: map[string]string{"id": "a"}},
			b:    domain.NavigationRequest{To: "product", Params: map[string]string{"id": "a", "rest": "b"}},
			want: false,
		},
		{
			name: "removed param",
			a:    domain.NavigationRequest{Page: "page", Params: map[string]string{"id": "a", "rest": "b"}},
			b:    domain.NavigationRequest{Page: "page", Params: map[string]string{"id": "a"}},
			want: false,
		},
		{
			name: "changed param",
			a:    domain.NavigationRequest{Page: "page", Params: map[string]string{"id": "a"}},
			b:    domain.NavigationRequest{Page: "page", Params: map[string]string{"id": "b"}},
			want: false,
		},
		{
			name: "different query",
			a:    domain.NavigationRequest{To: "/search", Query: "q=shoes"},
			b:    domain.NavigationRequest{To: "/search", Query: "q=hats"},
			want: false,
		},
		{
			name: "nil and empty params",
			a:    domain.NavigationRequest{To: "/"},
			b:    domain.NavigationRequest{To: "/", Params: map[string]string{}},
			want: true,
		},
		{
			name: "delivery options ignored",
			a:    domain.NavigationRequest{To: "/", Replace: true},
			b:    domain.NavigationRequest{To: "/", FallbackToWindowLocation: true},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.SameTarget(tt.b))
			assert.Equal(t, tt.want, tt.b.SameTarget(tt.a))
		})
	}
}

func TestNavigationRequest_Normalize_DetachesParams(t *testing.T) {
	params := map[string]string{"id": "a"}
	req := domain.NavigationRequest{Page: "page", Params: params}

	normalized := req.Normalize()
	params["id"] = "changed"

	if diff := cmp.Diff(map[string]string{"id": "a"}, normalized.Params); diff != "" {
		t.Errorf("normalized params changed with caller map (-want +got):\n%s", diff)
	}
	assert.Nil(t, domain.NavigationRequest{To: "/", Params: map[string]string{}}.Normalize().Params)
}

func TestLocation_String(t *testing.T) {
	assert.Equal(t, "/a", domain.Location{Pathname: "/a"}.String())
	assert.Equal(t, "/a?v=2", domain.Location{Pathname: "/a", Search: "v=2"}.String())
	assert.Equal(t, "/a?v=2#top", domain.Location{Pathname: "/a", Search: "?v=2", Hash: "top"}.String())
}
