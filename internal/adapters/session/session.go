// Package session makes sure a session exists before GraphQL requests are sent.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

const requestTimeout = 10 * time.Second

var _ ports.SessionEnsurer = (*Ensurer)(nil)

// Ensurer implements ports.SessionEnsurer.
// With an endpoint it creates the session remotely once and remembers it;
// without one it mints a local session id.
// Concurrent first callers share a single request.
type Ensurer struct {
	endpoint   string
	httpClient *http.Client
	group      singleflight.Group

	mu sync.RWMutex
	id string
}

// New creates an Ensurer for endpoint. An empty endpoint mints sessions locally.
func New(endpoint string) *Ensurer {
	return NewWithClient(endpoint, &http.Client{Timeout: requestTimeout})
}

// NewWithClient creates an Ensurer that talks to endpoint with client.
func NewWithClient(endpoint string, client *http.Client) *Ensurer {
	return &Ensurer{endpoint: endpoint, httpClient: client}
}

type sessionResponse struct {
	ID string `json:"id"`
}

// EnsureSession returns the current session id, creating the session on first use.
func (e *Ensurer) EnsureSession(ctx context.Context) (string, error) {
	e.mu.RLock()
	id := e.id
	e.mu.RUnlock()
	if id != "" {
		return id, nil
	}

	v, err, _ := e.group.Do("session", func() (any, error) {
		e.mu.RLock()
		id := e.id
		e.mu.RUnlock()
		if id != "" {
			return id, nil
		}

		id, err := e.create(ctx)
		if err != nil {
			return "", err
		}

		e.mu.Lock()
		e.id = id
		e.mu.Unlock()
		return id, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (e *Ensurer) create(ctx context.Context) (string, error) {
	if e.endpoint == "" {
		return uuid.NewString(), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader([]byte("{}")))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSessionFailed.Error()), "endpoint", e.endpoint)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSessionFailed.Error()), "endpoint", e.endpoint)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", zerr.With(
			zerr.With(zerr.Wrap(domain.ErrSessionFailed, http.StatusText(resp.StatusCode)), "endpoint", e.endpoint),
			"status_code", resp.StatusCode,
		)
	}

	var body sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSessionFailed.Error()), "endpoint", e.endpoint)
	}
	if body.ID == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrSessionFailed, "response carries no session id"), "endpoint", e.endpoint)
	}
	return body.ID, nil
}
