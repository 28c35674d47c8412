package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/render/internal/app"
	"go.trai.ch/render/internal/core/domain"
	"go.trai.ch/render/internal/ui/style"
)

const pagePrefix = "page:"

type navigationOutput struct {
	Target    string `json:"target"`
	Navigated bool   `json:"navigated"`
	Location  string `json:"location"`
	Assigned  string `json:"assigned,omitempty"`
}

func (c *CLI) newNavigateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "navigate TARGET...",
		Short: "Replay navigations against a fresh history",
		Long: "Replay navigations against a fresh history, in order.\n\n" +
			"A TARGET of the form page:NAME navigates to a declared page, anything else\n" +
			"is a path or URL. A target repeating the previous accepted one is dropped.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, _ := cmd.Flags().GetStringArray("param")
			query, _ := cmd.Flags().GetString("query")
			replace, _ := cmd.Flags().GetBool("replace")
			fallback, _ := cmd.Flags().GetBool("fallback")

			params, err := parseParams(pairs)
			if err != nil {
				return err
			}

			requests := make([]domain.NavigationRequest, 0, len(args))
			for _, target := range args {
				req := domain.NavigationRequest{
					Params:                   params,
					Query:                    query,
					Replace:                  replace,
					FallbackToWindowLocation: fallback,
				}
				if page, ok := strings.CutPrefix(target, pagePrefix); ok {
					req.Page = page
				} else {
					req.To = target
				}
				requests = append(requests, req)
			}

			outcomes, err := c.app.Navigate(cmd.Context(), app.NavigateOptions{
				ConfigPath: configPath(cmd),
				Requests:   requests,
			})
			if printErr := printNavigation(cmd, args, outcomes); printErr != nil {
				return printErr
			}
			return err
		},
	}
	cmd.Flags().StringArrayP("param", "p", nil, "Route param as key=value, applied to every target")
	cmd.Flags().StringP("query", "q", "", "Query string applied to every target")
	cmd.Flags().Bool("replace", false, "Replace the current history entry instead of pushing")
	cmd.Flags().Bool("fallback", false, "Load targets outside the app with a full page load")
	return cmd
}

func printNavigation(cmd *cobra.Command, targets []string, outcomes []app.NavigationOutcome) error {
	w := cmd.OutOrStdout()

	out := make([]navigationOutput, 0, len(outcomes))
	for i, o := range outcomes {
		out = append(out, navigationOutput{
			Target:    targets[i],
			Navigated: o.Navigated,
			Location:  o.Location.String(),
			Assigned:  o.Assigned,
		})
	}

	if jsonOutput(cmd) {
		return printJSON(w, out)
	}

	for _, o := range out {
		switch {
		case o.Assigned != "":
			_, _ = fmt.Fprintf(w, "%s %s %s\n", style.Accent.Render(style.Arrow), o.Target, style.Value.Render(o.Assigned))
		case o.Navigated:
			_, _ = fmt.Fprintf(w, "%s %s %s\n", style.Good.Render(style.Check), o.Target, style.Value.Render(o.Location))
		default:
			_, _ = fmt.Fprintf(w, "%s %s %s\n", style.Key.Render(style.Warning), o.Target, style.Key.Render("deduplicated"))
		}
	}
	return nil
}
