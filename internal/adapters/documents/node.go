package documents

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/render/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the document walker Graft node.
	WalkerNodeID graft.ID = "adapter.documents.walker"
	// HasherNodeID is the unique identifier for the document hasher Graft node.
	HasherNodeID graft.ID = "adapter.documents.hasher"
	// LoaderNodeID is the unique identifier for the document loader Graft node.
	LoaderNodeID graft.ID = "adapter.documents.loader"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.DocumentHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DocumentHasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.DocumentLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID, HasherNodeID},
		Run: func(ctx context.Context) (ports.DocumentLoader, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.DocumentHasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(hasher, walker), nil
		},
	})
}
