package commands

import (
	"encoding/json"
	"strings"

	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/zerr"
)

// parseVariables turns key=value pairs into operation variables.
// Values that are valid JSON are decoded, everything else is kept as a string.
func parseVariables(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	vars := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidFlag, "expected key=value"), "value", pair)
		}

		var value any
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			value = raw
		}
		vars[key] = value
	}
	return vars, nil
}

// parseParams turns key=value pairs into route params.
func parseParams(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	params := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidFlag, "expected key=value"), "value", pair)
		}
		params[key] = value
	}
	return params, nil
}
