package link

import (
	"context"

	"go.trai.ch/render/internal/core/domain"
)

const typenameKey = "__typename"

// OmitTypename strips __typename keys from the variables.
// Objects read from the cache carry them, but input types reject them.
type OmitTypename struct{}

// NewOmitTypename creates an OmitTypename stage.
func NewOmitTypename() *OmitTypename {
	return &OmitTypename{}
}

// Name implements Stage.
func (s *OmitTypename) Name() string { return "omit-typename" }

// Apply replaces the variables with a copy without __typename keys.
func (s *OmitTypename) Apply(_ context.Context, op *domain.Operation) error {
	if op.Variables == nil {
		return nil
	}
	op.Variables, _ = omitTypename(op.Variables).(map[string]any)
	return nil
}

func omitTypename(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, child := range v {
			if key == typenameKey {
				continue
			}
			out[key] = omitTypename(child)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, child := range v {
			out[i] = omitTypename(child)
		}
		return out
	default:
		return v
	}
}
