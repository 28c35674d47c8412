package domain

import (
	"encoding/json"
	"io"
	"net/http"
)

// Operation types as written in GraphQL documents.
const (
	OperationQuery        = "query"
	OperationMutation     = "mutation"
	OperationSubscription = "subscription"
)

// Document is a GraphQL document as shipped with an app.
type Document struct {
	// Name is the file the document was loaded from, or a label for inline documents.
	Name string
	// Text is the document source.
	Text string
	// ID is the content hash assigned when the document was precompiled.
	// Inline documents have no ID.
	ID string
}

// NewInlineDocument wraps a query literal that was not precompiled.
func NewInlineDocument(text string) *Document {
	return &Document{Name: "inline", Text: text}
}

// Operation is one GraphQL request travelling through the link chain.
// It is owned by the pipeline until it is dispatched.
type Operation struct {
	ID            string
	OperationName string
	Document      *Document
	Variables     map[string]any
	Extensions    map[string]any
	Context       OperationContext
}

// OperationContext is the mutable bag the links read and write.
type OperationContext struct {
	// URI is the transport target computed by the URI switch.
	URI string
	// Method is the HTTP method, empty until a link selects one.
	Method string
	// Headers are sent with the request.
	Headers http.Header
	// IncludeQuery sends the document text along with the request.
	IncludeQuery bool
	// QueryHash is the document hash used for persisted queries.
	QueryHash string
	// Hints is the resolved caching decision.
	Hints ResolvedHints
	// Providers are the app versions the document asked for, normalized to major ranges.
	Providers []string
	// Runtime is the render runtime the request belongs to.
	Runtime *RenderRuntime
	// SessionID is the session the request runs under.
	SessionID string
}

// SetHeader sets a request header, allocating the header map on first use.
func (c *OperationContext) SetHeader(key, value string) {
	if c.Headers == nil {
		c.Headers = make(http.Header)
	}
	c.Headers.Set(key, value)
}

// Upload is a file variable sent through a multipart request.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// GraphQLError is one entry of a response "errors" array.
type GraphQLError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// OperationID returns the server-side operation id carried in the extensions, if any.
func (e GraphQLError) OperationID() string {
	if e.Extensions == nil {
		return ""
	}
	id, _ := e.Extensions["operationId"].(string)
	return id
}

// Response is a decoded GraphQL response.
type Response struct {
	StatusCode int
	Header     http.Header
	Data       json.RawMessage
	Errors     []GraphQLError
	Extensions map[string]any
}
