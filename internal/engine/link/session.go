package link

import (
	"context"

	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/core/ports"
)

// EnsureSession holds the operation until a session exists.
type EnsureSession struct {
	sessions ports.SessionEnsurer
}

// NewEnsureSession creates an EnsureSession stage.
func NewEnsureSession(sessions ports.SessionEnsurer) *EnsureSession {
	return &EnsureSession{sessions: sessions}
}

// Name implements Stage.
func (s *EnsureSession) Name() string { return "ensure-session" }

// Apply implements Stage.
func (s *EnsureSession) Apply(ctx context.Context, op *domain.Operation) error {
	id, err := s.sessions.EnsureSession(ctx)
	if err != nil {
		return err
	}
	op.Context.SessionID = id
	return nil
}
