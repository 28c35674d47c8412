package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/render/internal/core/domain"
)

type shapeOutput struct {
	OperationName string            `json:"operationName,omitempty"`
	Method        string            `json:"method"`
	URI           string            `json:"uri"`
	IncludeQuery  bool              `json:"includeQuery"`
	QueryHash     string            `json:"queryHash,omitempty"`
	Scope         string            `json:"scope"`
	MaxAge        string            `json:"maxAge"`
	Version       int               `json:"version"`
	Providers     []string          `json:"providers,omitempty"`
	Headers       map[string]string `json:"headers,omitempty"`
	Extensions    map[string]any    `json:"extensions,omitempty"`
}

func (c *CLI) newShapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shape DOCUMENT",
		Short: "Show how an operation would be sent without sending it",
		Args:  cobra.ExactArgs(1),
		RunE:  func(cmd *cobra.Command, args []string) error {
			opts, err := queryOptions(cmd, args[0])
			if err != nil {
				return err
			}

			op, err := c.app.Shape(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return printShape(cmd, op)
		},
	}
	addOperationFlags(cmd)
	return cmd
}

func printShape(cmd *cobra.Command, op *domain.Operation) error {
	w := cmd.OutOrStdout()

	out := shapeOutput{
		OperationName: op.OperationName,
		Method:        op.Context.Method,
		URI:           op.Context.URI,
		IncludeQuery:  op.Context.IncludeQuery,
		QueryHash:     op.Context.QueryHash,
		Scope:         op.Context.Hints.Scope,
		MaxAge:        op.Context.Hints.MaxAge,
		Version:       op.Context.Hints.Version,
		Providers:     op.Context.Providers,
		Extensions:    op.Extensions,
	}
	if len(op.Context.Headers) > 0 {
		out.Headers = make(map[string]string, len(op.Context.Headers))
		for key := range op.Context.Headers {
			out.Headers[key] = op.Context.Headers.Get(key)
		}
	}

	if jsonOutput(cmd) {
		return printJSON(w, out)
	}

	field(w, "method", out.Method)
	field(w, "uri", out.URI)
	field(w, "include query", out.IncludeQuery)
	if out.QueryHash != "" {
		field(w, "hash", out.QueryHash)
	}
	field(w, "scope", out.Scope)
	field(w, "max age", out.MaxAge)
	field(w, "version", out.Version)
	if len(out.Providers) > 0 {
		field(w, "providers", strings.Join(out.Providers, ", "))
	}
	return nil
}
