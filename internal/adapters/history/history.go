// Package history keeps the browser history of a rendered page in memory.
package history

import (
	"slices"
	"sync"

	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/core/ports"
)

var (
	_ ports.History        = (*History)(nil)
	_ ports.WindowLocation = (*Window)(nil)
)

// Entry is one history entry.
type Entry struct {
	Location domain.Location
	State    domain.NavigationState
}

// Listener is notified after the current entry changed.
type Listener func(Entry)

// History implements ports.History.
// Listeners run after the lock is released and may navigate again.
type History struct {
	mu        sync.Mutex
	entries   []Entry
	listeners []Listener
}

// New creates a History whose first entry is initial.
func New(initial domain.Location) *History {
	return &History{entries: []Entry{{Location: initial}}}
}

// Listen registers l for every later change.
func (h *History) Listen(l Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners = append(h.listeners, l)
}

// Push adds a new entry.
func (h *History) Push(loc domain.Location, state domain.NavigationState) {
	entry := Entry{Location: loc, State: state}

	h.mu.Lock()
	h.entries = append(h.entries, entry)
	listeners := slices.Clone(h.listeners)
	h.mu.Unlock()

	notify(listeners, entry)
}

// Replace overwrites the current entry.
func (h *History) Replace(loc domain.Location, state domain.NavigationState) {
	entry := Entry{Location: loc, State: state}

	h.mu.Lock()
	h.entries[len(h.entries)-1] = entry
	listeners := slices.Clone(h.listeners)
	h.mu.Unlock()

	notify(listeners, entry)
}

// Location returns the current entry's location.
func (h *History) Location() domain.Location {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[len(h.entries)-1].Location
}

// Entries returns a copy of all entries, oldest first.
func (h *History) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.entries)
}

func notify(listeners []Listener, entry Entry) {
	for _, l := range listeners {
		l(entry)
	}
}

// Window implements ports.WindowLocation by recording full page loads.
type Window struct {
	mu       sync.Mutex
	assigned []string
}

// NewWindow creates a Window with no page loads.
func NewWindow() *Window {
	return &Window{}
}

// Assign records a full page load of url.
func (w *Window) Assign(url string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.assigned = append(w.assigned, url)
}

// Assigned returns the urls loaded so far.
func (w *Window) Assigned() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.assigned)
}
