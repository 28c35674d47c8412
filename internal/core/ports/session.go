package ports

import "context"

// SessionEnsurer makes sure a session exists before a request is sent.
//
//go:generate mockgen -source=session.go -destination=mocks/mock_session.go -package=mocks
type SessionEnsurer interface {
	// EnsureSession blocks until a session is available and returns its id.
	EnsureSession(ctx context.Context) (string, error)
}
