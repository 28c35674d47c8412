package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/render/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/render/internal/adapters/documents"  //nolint:depguard // Wired in app layer
	"go.trai.ch/render/internal/adapters/errorstore" //nolint:depguard // Wired in app layer
	"go.trai.ch/render/internal/adapters/graphql"    //nolint:depguard // Wired in app layer
	"go.trai.ch/render/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/render/internal/adapters/metrics"    //nolint:depguard // Wired in app layer
	"go.trai.ch/render/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/render/internal/adapters/transport"  //nolint:depguard // Wired in app layer
	"go.trai.ch/render/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			documents.LoaderNodeID,
			graphql.NodeID,
			transport.NodeID,
			errorstore.NodeID,
			telemetry.TracerNodeID,
			metrics.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	docs, err := graft.Dep[ports.DocumentLoader](ctx)
	if err != nil {
		return nil, err
	}

	classifier, err := graft.Dep[ports.QueryClassifier](ctx)
	if err != nil {
		return nil, err
	}

	terminal, err := graft.Dep[ports.Transport](ctx)
	if err != nil {
		return nil, err
	}

	errors, err := graft.Dep[ports.GraphQLErrorStore](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	recorder, err := graft.Dep[*metrics.Prometheus](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, docs, classifier, terminal, errors, tracer, recorder, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
