package link

import (
	"context"
	"strings"

	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/core/ports"
)

// VersionSplitter reads the apps a document asks for through @context(provider:)
// and records them as major ranges, so that patch releases share cache entries.
type VersionSplitter struct {
	classifier ports.QueryClassifier
}

// NewVersionSplitter creates a VersionSplitter.
func NewVersionSplitter(classifier ports.QueryClassifier) *VersionSplitter {
	return &VersionSplitter{classifier: classifier}
}

// Name implements Stage.
func (s *VersionSplitter) Name() string { return "version-splitter" }

// Apply sets op.Context.Providers.
func (s *VersionSplitter) Apply(_ context.Context, op *domain.Operation) error {
	assets, err := s.classifier.Classify(op.Document, op.OperationName)
	if err != nil {
		return err
	}

	providers := make([]string, 0, len(assets.Providers))
	seen := make(map[string]struct{}, len(assets.Providers))
	for _, p := range assets.Providers {
		p = MajorRange(p)
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		providers = append(providers, p)
	}
	op.Context.Providers = providers
	return nil
}

// MajorRange turns "vendor.app@1.2.3" into "vendor.app@1.x".
// Values without a version are returned unchanged.
func MajorRange(provider string) string {
	name, version, ok := strings.Cut(provider, "@")
	if !ok || version == "" {
		return provider
	}
	major, _, _ := strings.Cut(version, ".")
	return name + "@" + major + ".x"
}
