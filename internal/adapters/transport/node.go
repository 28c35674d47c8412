package transport

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/render/internal/core/ports"
)

// NodeID is the unique identifier for the transport Graft node.
const NodeID graft.ID = "adapter.transport"

func init() {
	graft.Register(graft.Node[ports.Transport]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Transport, error) {
			return New(), nil
		},
	})
}
