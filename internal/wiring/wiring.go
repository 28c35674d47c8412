// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/render/internal/adapters/config"
	_ "go.trai.ch/render/internal/adapters/documents"
	_ "go.trai.ch/render/internal/adapters/errorstore"
	_ "go.trai.ch/render/internal/adapters/graphql"
	_ "go.trai.ch/render/internal/adapters/logger"
	_ "go.trai.ch/render/internal/adapters/metrics"
	_ "go.trai.ch/render/internal/adapters/telemetry"
	_ "go.trai.ch/render/internal/adapters/transport"
	// Register app nodes.
	_ "go.trai.ch/render/internal/app"
)
