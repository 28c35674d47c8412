package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/render/internal/core/domain"
)

func (c *CLI) newLocatorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locator APP TYPE ID",
		Short: "Print the cache id of an entity",
		Long: "Print the cache id an entity of TYPE with cache id ID is stored under,\n" +
			"for an APP given as vendor.app@version.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			locator, err := domain.BuildCacheLocator(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), locator)
			return err
		},
	}
}
