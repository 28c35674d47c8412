package domain

import "strings"

// RenderRuntime is the per-request configuration the runtime was rendered with.
type RenderRuntime struct {
	Account    string
	Workspace  string
	AppsEtag   string
	Production bool
	// AMP is set when rendering an AMP page; navigation is unavailable there.
	AMP bool
	// Browser is set when running against a real browser host rather than server-side.
	Browser bool
	// Host is the host the page was served from (window.location.host).
	Host string
	// BaseURI is the host GraphQL requests are sent to.
	BaseURI    string
	Domain     string
	Locale     string
	CacheHints CacheHints
	Pages      Pages
}

// WorkspaceKey identifies the client registry slot of the runtime.
func (r *RenderRuntime) WorkspaceKey() string {
	return r.Account + "/" + r.Workspace
}

// Validate checks the fields every runtime needs.
func (r *RenderRuntime) Validate() error {
	if r.Account == "" || r.Workspace == "" {
		return ErrInvalidWorkspace
	}
	return nil
}

// Protocol returns the scheme used to reach BaseURI.
// Plain http is only used by a browser pointed at a localhost host.
func (r *RenderRuntime) Protocol() string {
	if r.Browser && strings.HasPrefix(r.Host, "localhost") {
		return "http"
	}
	return "https"
}
