// Package commands implements the CLI commands for the render runtime.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/render/internal/app"
	"go.trai.ch/render/internal/build"
	"go.trai.ch/render/internal/core/domain"
)

// CLI represents the command line interface for render.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Query(ctx context.Context, opts app.QueryOptions) (*app.QueryResult, error)
	RenderPage(ctx context.Context, opts app.PageOptions) (*app.PageResult, error)
	Shape(ctx context.Context, opts app.QueryOptions) (*domain.Operation, error)
	Navigate(ctx context.Context, opts app.NavigateOptions) ([]app.NavigationOutcome, error)
	ListDocuments(configPath string) ([]string, error)
	OperationIDs() []string
	EnableTracing()
	WriteMetrics(path string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "render",
		Short:         "Run storefront GraphQL operations and navigations the way a rendered page does",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "render.yaml", "Path to the runtime configuration")
	rootCmd.PersistentFlags().Bool("json", false, "Print results as JSON")
	rootCmd.PersistentFlags().Bool("trace", false, "Log a line for every finished span")
	rootCmd.PersistentFlags().String("metrics-out", "", "Write Prometheus metrics to this file after the command")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if trace, _ := cmd.Flags().GetBool("trace"); trace {
			c.app.EnableTracing()
		}
	}
	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, _ []string) error {
		path, _ := cmd.Flags().GetString("metrics-out")
		if path == "" {
			return nil
		}
		return c.app.WriteMetrics(path)
	}

	rootCmd.AddCommand(c.newQueryCmd())
	rootCmd.AddCommand(c.newPageCmd())
	rootCmd.AddCommand(c.newShapeCmd())
	rootCmd.AddCommand(c.newNavigateCmd())
	rootCmd.AddCommand(c.newDocumentsCmd())
	rootCmd.AddCommand(c.newLocatorCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}

func jsonOutput(cmd *cobra.Command) bool {
	enabled, _ := cmd.Flags().GetBool("json")
	return enabled
}
