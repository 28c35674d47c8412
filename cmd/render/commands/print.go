package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"go.trai.ch/render/internal/ui/style"
)

// field prints one aligned "key value" line.
func field(w io.Writer, key string, value any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", style.Key.Render(fmt.Sprintf("%-14s", key)), style.Value.Render(fmt.Sprint(value)))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
