package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/render/internal/app"
	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/engine/client"
	"go.trai.ch/render/internal/ui/style"
)

type pageOperationOutput struct {
	Document string                `json:"document"`
	Method   string                `json:"method"`
	URI      string                `json:"uri"`
	Errors   []domain.GraphQLError `json:"errors,omitempty"`
}

type pageOutput struct {
	CacheControl string                `json:"cacheControl"`
	Operations   []pageOperationOutput `json:"operations"`
	State        domain.CacheState     `json:"state,omitempty"`
}

func (c *CLI) newPageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "page DOCUMENT...",
		Short: "Send the operations of a page concurrently and print the page cache header",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			concurrency, _ := cmd.Flags().GetInt("concurrency")
			withState, _ := cmd.Flags().GetBool("state")

			operations := make([]app.PageOperation, 0, len(args))
			for _, name := range args {
				operations = append(operations, app.PageOperation{Document: app.DocumentRef{Source: name}})
			}

			result, err := c.app.RenderPage(cmd.Context(), app.PageOptions{
				ConfigPath:  configPath(cmd),
				Operations:  operations,
				Concurrency: concurrency,
			})
			if err != nil {
				return err
			}

			out := pageOutput{CacheControl: result.CacheControl}
			for i, r := range result.Results {
				out.Operations = append(out.Operations, pageOperation(args[i], r))
			}
			if withState {
				out.State = result.State
			}
			return printPage(cmd, out)
		},
	}
	cmd.Flags().Int("concurrency", 0, "Maximum operations in flight, 0 for no limit")
	cmd.Flags().Bool("state", false, "Print the client state handed over for hydration")
	return cmd
}

func pageOperation(document string, r *client.Result) pageOperationOutput {
	out := pageOperationOutput{
		Document: document,
		Method:   r.Operation.Context.Method,
		URI:      r.Operation.Context.URI,
	}
	if r.Response != nil {
		out.Errors = r.Response.Errors
	}
	return out
}

func printPage(cmd *cobra.Command, out pageOutput) error {
	w := cmd.OutOrStdout()
	if jsonOutput(cmd) {
		return printJSON(w, out)
	}

	for _, op := range out.Operations {
		mark := style.Good.Render(style.Check)
		if len(op.Errors) > 0 {
			mark = style.Bad.Render(style.Cross)
		}
		_, _ = fmt.Fprintf(w, "%s %s %s %s\n", mark, op.Document, style.Key.Render(op.Method), op.URI)
	}
	field(w, "cache-control", out.CacheControl)
	if out.State != nil {
		return printJSON(w, out.State)
	}
	return nil
}
