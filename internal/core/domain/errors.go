package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingNavigationTarget is returned when a navigation request sets neither `to` nor `page`.
	ErrMissingNavigationTarget = zerr.New("navigation request must set either 'to' or 'page'")

	// ErrPageNotFound is returned when a navigation request names a page that is not declared.
	ErrPageNotFound = zerr.New("page not found")

	// ErrMissingRouteParam is returned when a page path template needs a param the request does not carry.
	ErrMissingRouteParam = zerr.New("missing route param")

	// ErrUnavailableInAMP is returned when a runtime capability is used while rendering an AMP page.
	ErrUnavailableInAMP = zerr.New("runtime capability is not available in AMP pages")

	// ErrRuntimeNotFound is returned when no runtime was attached to the context.
	ErrRuntimeNotFound = zerr.New("render runtime not found in context")

	// ErrUnhashableQuery is returned in development when a query document carries no hash.
	ErrUnhashableQuery = zerr.New(
		"Could not generate hash from query. Are you using graphql-tag ? " +
			"Split your graphql queries in .graphql files and import them instead",
	)

	// ErrInvalidQuery is returned when a query document cannot be parsed.
	ErrInvalidQuery = zerr.New("invalid graphql document")

	// ErrInvalidAppLocator is returned when an app identifier is not in vendor.app@major form.
	ErrInvalidAppLocator = zerr.New("invalid app identifier, expected format: vendor.app@major.x")

	// ErrInvalidWorkspace is returned when a runtime lacks an account or workspace.
	ErrInvalidWorkspace = zerr.New("runtime must define account and workspace")

	// ErrInvalidScope is returned when a cache hint declares a scope other than public or private.
	ErrInvalidScope = zerr.New("invalid cache scope, expected 'public' or 'private'")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrDocumentReadFailed is returned when a .graphql document cannot be read.
	ErrDocumentReadFailed = zerr.New("failed to read graphql document")

	// ErrDocumentNotFound is returned when a named document is not in the registry.
	ErrDocumentNotFound = zerr.New("graphql document not found")

	// ErrSessionFailed is returned when the session could not be established.
	ErrSessionFailed = zerr.New("failed to ensure session")

	// ErrTransportFailed is returned when the request could not be sent or decoded.
	ErrTransportFailed = zerr.New("graphql request failed")

	// ErrUnexpectedStatus is returned when the server answers with a non-2xx status.
	ErrUnexpectedStatus = zerr.New("unexpected response status")

	// ErrStoreReadFailed is returned when persisted client state cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read client state")

	// ErrStoreUnmarshalFailed is returned when persisted client state cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal client state")

	// ErrStoreMarshalFailed is returned when client state cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal client state")

	// ErrStoreWriteFailed is returned when client state cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write client state")

	// ErrInvalidFlag is returned when a command line flag value cannot be parsed.
	ErrInvalidFlag = zerr.New("invalid flag value")
)
