package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/render/internal/app"
	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/ui/style"
)

type queryOutput struct {
	Data         json.RawMessage       `json:"data,omitempty"`
	Errors       []domain.GraphQLError `json:"errors,omitempty"`
	Method       string                `json:"method"`
	URI          string                `json:"uri"`
	CacheControl string                `json:"cacheControl,omitempty"`
	OperationIDs []string              `json:"operationIds,omitempty"`
}

func (c *CLI) newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query DOCUMENT",
		Short: "Send a GraphQL operation through the workspace client",
		Long: "Send a GraphQL operation through the workspace client.\n\n" +
			"DOCUMENT names a precompiled document below the documents directory,\n" +
			"or is the query text itself when --inline is set.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := queryOptions(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := c.app.Query(cmd.Context(), opts)
			if result != nil && result.Result != nil {
				if printErr := c.printQuery(cmd, result); printErr != nil {
					return printErr
				}
			}
			return err
		},
	}
	addOperationFlags(cmd)
	return cmd
}

func addOperationFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("var", "v", nil, "Operation variable as key=value, JSON values are decoded")
	cmd.Flags().StringP("operation", "o", "", "Operation to run when the document defines several")
	cmd.Flags().Bool("inline", false, "Treat DOCUMENT as query text instead of a document name")
}

func queryOptions(cmd *cobra.Command, source string) (app.QueryOptions, error) {
	pairs, _ := cmd.Flags().GetStringArray("var")
	operation, _ := cmd.Flags().GetString("operation")
	inline, _ := cmd.Flags().GetBool("inline")

	vars, err := parseVariables(pairs)
	if err != nil {
		return app.QueryOptions{}, err
	}

	return app.QueryOptions{
		ConfigPath:    configPath(cmd),
		Document:      app.DocumentRef{Source: source, Inline: inline},
		OperationName: operation,
		Variables:     vars,
	}, nil
}

func (c *CLI) printQuery(cmd *cobra.Command, result *app.QueryResult) error {
	w := cmd.OutOrStdout()
	op := result.Operation

	out := queryOutput{
		Method:       op.Context.Method,
		URI:          op.Context.URI,
		CacheControl: result.CacheControl,
		OperationIDs: c.app.OperationIDs(),
	}
	if resp := result.Response; resp != nil {
		out.Data = resp.Data
		out.Errors = resp.Errors
	}

	if jsonOutput(cmd) {
		return printJSON(w, out)
	}

	field(w, "method", out.Method)
	field(w, "uri", out.URI)
	if out.CacheControl != "" {
		field(w, "cache-control", out.CacheControl)
	}
	for _, gqlErr := range out.Errors {
		_, _ = fmt.Fprintf(w, "%s %s\n", style.Bad.Render(style.Cross), gqlErr.Message)
	}
	if len(out.OperationIDs) > 0 {
		field(w, "operation ids", out.OperationIDs)
	}
	return printData(w, out.Data)
}

func printData(w io.Writer, data json.RawMessage) error {
	if len(data) == 0 {
		return nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		_, err = w.Write(data)
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}
