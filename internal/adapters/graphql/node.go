package graphql

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/render/internal/core/ports"
)

// NodeID is the unique identifier for the query classifier Graft node.
const NodeID graft.ID = "adapter.query_classifier"

func init() {
	graft.Register(graft.Node[ports.QueryClassifier]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.QueryClassifier, error) {
			return NewClassifier(), nil
		},
	})
}
