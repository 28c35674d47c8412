package errorstore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/render/internal/core/ports"
)

// NodeID is the unique identifier for the GraphQL error store Graft node.
const NodeID graft.ID = "adapter.error_store"

func init() {
	graft.Register(graft.Node[ports.GraphQLErrorStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.GraphQLErrorStore, error) {
			return New(), nil
		},
	})
}
