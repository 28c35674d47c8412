package ports

import "go.trai.ch/render/internal/core/domain"

// History is the browser history of the page.
//
//go:generate mockgen -source=history.go -destination=mocks/mock_history.go -package=mocks
type History interface {
	// Push adds a new entry.
	Push(loc domain.Location, state domain.NavigationState)
	// Replace overwrites the current entry.
	Replace(loc domain.Location, state domain.NavigationState)
	// Location returns the current entry.
	Location() domain.Location
}

// WindowLocation performs full page loads.
type WindowLocation interface {
	// Assign leaves the application and loads url.
	Assign(url string)
}
