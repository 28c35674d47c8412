// Package transport implements the terminal GraphQL transport over HTTP.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/core/ports"
	"go.trai.ch/zerr"
)

const httpClientTimeout = 30 * time.Second

var _ ports.Transport = (*HTTPTransport)(nil)

// HTTPTransport implements ports.Transport.
// GET requests carry the operation in the query string, POST requests in a JSON
// body, and operations with file variables use the GraphQL multipart request format.
type HTTPTransport struct {
	httpClient *http.Client
}

// New creates an HTTPTransport with a default client.
func New() *HTTPTransport {
	return NewWithClient(&http.Client{Timeout: httpClientTimeout})
}

// NewWithClient creates an HTTPTransport using client.
func NewWithClient(client *http.Client) *HTTPTransport {
	return &HTTPTransport{httpClient: client}
}

// requestBody is the JSON shape of a GraphQL request.
type requestBody struct {
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
	Extensions    map[string]any `json:"extensions,omitempty"`
	Query         string         `json:"query,omitempty"`
}

// responseBody is the JSON shape of a GraphQL response.
type responseBody struct {
	Data       json.RawMessage       `json:"data"`
	Errors     []domain.GraphQLError `json:"errors"`
	Extensions map[string]any        `json:"extensions"`
}

// Dispatch sends the operation to op.Context.URI using op.Context.Method.
func (t *HTTPTransport) Dispatch(ctx context.Context, op *domain.Operation) (*domain.Response, error) {
	if op.Context.URI == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrTransportFailed, "operation has no uri"), "operation", op.OperationName)
	}

	req, err := t.newRequest(ctx, op)
	if err != nil {
		return nil, err
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTransportFailed.Error()), "uri", op.Context.URI)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	return decodeResponse(resp)
}

func (t *HTTPTransport) newRequest(ctx context.Context, op *domain.Operation) (*http.Request, error) {
	body := requestBody{
		OperationName: op.OperationName,
		Variables:     op.Variables,
		Extensions:    op.Extensions,
	}
	if op.Context.IncludeQuery && op.Document != nil {
		body.Query = op.Document.Text
	}

	var (
		req *http.Request
		err error
	)

	uploads := collectUploads(op.Variables)
	switch {
	case len(uploads) > 0:
		req, err = newMultipartRequest(ctx, op.Context.URI, body, uploads)
	case op.Context.Method == http.MethodGet:
		req, err = newGetRequest(ctx, op.Context.URI, body)
	default:
		req, err = newPostRequest(ctx, op.Context.URI, body)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTransportFailed.Error()), "uri", op.Context.URI)
	}

	for key, values := range op.Context.Headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Accept", "application/json")

	return req, nil
}

func newPostRequest(ctx context.Context, uri string, body requestBody) (*http.Request, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func newGetRequest(ctx context.Context, uri string, body requestBody) (*http.Request, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, err
	}

	q := u.Query()
	if body.OperationName != "" {
		q.Set("operationName", body.OperationName)
	}
	if body.Query != "" {
		q.Set("query", body.Query)
	}
	if err := setJSONParam(q, "variables", body.Variables); err != nil {
		return nil, err
	}
	if err := setJSONParam(q, "extensions", body.Extensions); err != nil {
		return nil, err
	}
	u.RawQuery = q.Encode()

	return http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
}

func setJSONParam(q url.Values, key string, value map[string]any) error {
	if len(value) == 0 {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	q.Set(key, string(data))
	return nil
}

func decodeResponse(resp *http.Response) (*domain.Response, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrTransportFailed.Error())
	}

	ok := resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
	statusErr := zerr.With(
		zerr.Wrap(domain.ErrUnexpectedStatus, http.StatusText(resp.StatusCode)),
		"status_code", resp.StatusCode,
	)

	var body responseBody
	if err := json.Unmarshal(data, &body); err != nil {
		if !ok {
			return nil, statusErr
		}
		return nil, zerr.Wrap(err, domain.ErrTransportFailed.Error())
	}

	out := &domain.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Data:       body.Data,
		Errors:     body.Errors,
		Extensions: body.Extensions,
	}
	if !ok {
		return out, statusErr
	}
	return out, nil
}
