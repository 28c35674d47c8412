package domain

import "maps"

// NavigationRequest describes an in-app route change.
// Exactly one of To or Page is expected; To wins when both are set.
type NavigationRequest struct {
	// To is a raw path, optionally with a query string or a hash route (e.g. "/#/checkout").
	To string
	// Page is the name of a declared page, resolved through its path template.
	Page string
	// Params fill the page path template and are part of the navigation state.
	Params map[string]string
	// Query is appended as the search part of the resolved location.
	Query string
	// Replace replaces the current history entry instead of pushing a new one.
	Replace bool
	// FallbackToWindowLocation allows a full page load when the target is not an in-app route.
	FallbackToWindowLocation bool
}

// Validate reports whether the request names a target.
func (r NavigationRequest) Validate() error {
	if r.To == "" && r.Page == "" {
		return ErrMissingNavigationTarget
	}
	return nil
}

// Normalize returns a copy whose params are detached from the caller's map.
// Empty params collapse to nil so that a missing and an empty map compare equal.
func (r NavigationRequest) Normalize() NavigationRequest {
	n := r
	if len(r.Params) == 0 {
		n.Params = nil
	} else {
		n.Params = maps.Clone(r.Params)
	}
	return n
}

// SameTarget reports whether two requests point at the same destination.
// Only To, Page, Query and Params take part; delivery options such as Replace do not.
func (r NavigationRequest) SameTarget(other NavigationRequest) bool {
	if r.To != other.To || r.Page != other.Page || r.Query != other.Query {
		return false
	}
	return maps.Equal(r.Params, other.Params)
}

// Location is a browser location split into its parts.
type Location struct {
	Pathname string
	Search   string
	Hash     string
}

// String joins the location parts back into a path.
func (l Location) String() string {
	s := l.Pathname
	if l.Search != "" {
		if l.Search[0] != '?' {
			s += "?"
		}
		s += l.Search
	}
	if l.Hash != "" {
		if l.Hash[0] != '#' {
			s += "#"
		}
		s += l.Hash
	}
	return s
}

// NavigationState is stored with a history entry.
type NavigationState struct {
	// Page is the matched page name, empty when the path did not match any page.
	Page   string
	Params map[string]string
}
