package ports

import (
	"context"

	"go.trai.ch/render/internal/core/domain"
)

// Transport sends a fully shaped operation over the network.
//
//go:generate mockgen -source=transport.go -destination=mocks/mock_transport.go -package=mocks
type Transport interface {
	// Dispatch performs the request described by the operation context.
	Dispatch(ctx context.Context, op *domain.Operation) (*domain.Response, error)
}
