package client_test

import (
	"go.trai.ch/render/internal/adapters/graphql"
	"go.trai.ch/render/internal/adapters/session"
	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/engine/link"
)

func newClassifier() *graphql.Classifier {
	return graphql.NewClassifier()
}

func newRuntimeContext(rt *domain.RenderRuntime) link.Stage {
	return link.NewRuntimeContext(rt, nil)
}

func newSessionStage() link.Stage {
	return link.NewEnsureSession(session.New(""))
}
