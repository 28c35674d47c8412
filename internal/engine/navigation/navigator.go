// Package navigation implements in-app navigation with deduplication of repeated requests.
package navigation

import (
	"fmt"
	"maps"
	"net/url"
	"strings"
	"sync"

	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/core/ports"
)

const hashRoute = "/#/"

// Navigator turns navigation requests into history changes.
//
// It remembers the last accepted request and drops an identical follow-up request,
// so that effects firing twice do not create duplicate history entries.
// The comparison and update of the last request happen under one lock; the history
// change runs after it is released, so listeners may navigate again.
type Navigator struct {
	pages   domain.Pages
	history ports.History
	window  ports.WindowLocation
	logger  ports.Logger
	metrics ports.Metrics

	mu   sync.Mutex
	last *domain.NavigationRequest
}

// New creates a Navigator resolving page names against pages.
func New(
	pages domain.Pages,
	history ports.History,
	window ports.WindowLocation,
	logger ports.Logger,
	metrics ports.Metrics,
) *Navigator {
	return &Navigator{
		pages:   pages,
		history: history,
		window:  window,
		logger:  logger,
		metrics: metrics,
	}
}

// target is a request resolved to a location.
type target struct {
	location domain.Location
	state    domain.NavigationState
	// external is set for hash routes, absolute URLs and paths no page matches.
	external bool
	// href is what a full page load would go to.
	href string
}

// Navigate performs req unless it repeats the previous accepted request.
// It reports whether a navigation took place.
func (n *Navigator) Navigate(req domain.NavigationRequest) (bool, error) {
	if err := req.Validate(); err != nil {
		return false, err
	}
	req = req.Normalize()

	t, err := n.resolve(req)
	if err != nil {
		return false, err
	}

	n.mu.Lock()
	if n.last != nil && n.last.SameTarget(req) {
		n.mu.Unlock()
		n.metrics.NavigationDeduplicated()
		return false, nil
	}
	n.last = &req
	n.mu.Unlock()

	n.metrics.NavigationAccepted()
	n.perform(req, t)
	return true, nil
}

// Last returns the last accepted request.
func (n *Navigator) Last() (domain.NavigationRequest, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.last == nil {
		return domain.NavigationRequest{}, false
	}
	return *n.last, true
}

func (n *Navigator) perform(req domain.NavigationRequest, t target) {
	if t.external {
		if req.FallbackToWindowLocation {
			n.window.Assign(t.href)
			return
		}
		n.logger.Warn(fmt.Sprintf("no page matches %q, navigating within the app anyway", t.location.String()))
	}

	if req.Replace {
		n.history.Replace(t.location, t.state)
		return
	}
	n.history.Push(t.location, t.state)
}

func (n *Navigator) resolve(req domain.NavigationRequest) (target, error) {
	if req.To == "" {
		path, err := n.pages.BuildPath(req.Page, req.Params)
		if err != nil {
			return target{}, err
		}
		loc := domain.Location{Pathname: path, Search: strings.TrimPrefix(req.Query, "?")}
		return target{
			location: loc,
			state:    domain.NavigationState{Page: req.Page, Params: req.Params},
			href:     loc.String(),
		}, nil
	}

	raw := req.To
	external := false
	if strings.Contains(raw, hashRoute) {
		raw = strings.Replace(raw, hashRoute, "/", 1)
		external = true
	}
	if u, err := url.Parse(raw); err == nil && u.IsAbs() {
		external = true
	}

	loc := splitLocation(raw)
	if loc.Search == "" {
		loc.Search = strings.TrimPrefix(req.Query, "?")
	}

	state := domain.NavigationState{Params: req.Params}
	if !external {
		page, params, ok := n.pages.Match(loc.Pathname)
		if ok {
			state = domain.NavigationState{Page: page, Params: mergeParams(params, req.Params)}
		} else {
			external = true
		}
	}

	href := raw
	if req.Query != "" && !strings.Contains(raw, "?") {
		href = loc.String()
	}

	return target{location: loc, state: state, external: external, href: href}, nil
}

// splitLocation cuts a relative path into its parts.
func splitLocation(raw string) domain.Location {
	var loc domain.Location
	rest, hash, _ := strings.Cut(raw, "#")
	loc.Hash = hash
	rest, search, _ := strings.Cut(rest, "?")
	loc.Search = search
	if rest != "" && !strings.HasPrefix(rest, "/") && !strings.Contains(rest, "://") {
		rest = "/" + rest
	}
	loc.Pathname = rest
	return loc
}

func mergeParams(matched, given map[string]string) map[string]string {
	if len(given) == 0 {
		return matched
	}
	out := make(map[string]string, len(matched)+len(given))
	maps.Copy(out, matched)
	maps.Copy(out, given)
	return out
}
