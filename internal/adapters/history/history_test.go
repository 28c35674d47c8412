package history_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/render/internal/adapters/history"
	"go.trai.ch/render/internal/core/domain"
)

func TestHistory_PushAndReplace(t *testing.T) {
	h := history.New(domain.Location{Pathname: "/"})
	assert.Equal(t, domain.Location{Pathname: "/"}, h.Location())

	h.Push(domain.Location{Pathname: "/a"}, domain.NavigationState{Page: "a"})
	assert.Equal(t, "/a", h.Location().Pathname)

	h.Replace(domain.Location{Pathname: "/b", Search: "q=1"}, domain.NavigationState{Page: "b"})
	assert.Equal(t, "/b?q=1", h.Location().String())

	entries := h.Entries()
	assert.Len(t, entries, 2)
	assert.Equal(t, "b", entries[1].State.Page)
}

func TestHistory_ListenersMayReenter(t *testing.T) {
	h := history.New(domain.Location{Pathname: "/"})

	var seen []string
	h.Listen(func(e history.Entry) {
		seen = append(seen, e.Location.Pathname)
		if e.Location.Pathname == "/a" {
			h.Replace(domain.Location{Pathname: "/a/canonical"}, e.State)
		}
	})

	h.Push(domain.Location{Pathname: "/a"}, domain.NavigationState{Page: "a"})

	assert.Equal(t, []string{"/a", "/a/canonical"}, seen)
	assert.Equal(t, "/a/canonical", h.Location().Pathname)
}

func TestWindow_Assign(t *testing.T) {
	w := history.NewWindow()
	assert.Empty(t, w.Assigned())

	w.Assign("/checkout")
	w.Assign("https://example.com")

	assert.Equal(t, []string{"/checkout", "https://example.com"}, w.Assigned())
}
