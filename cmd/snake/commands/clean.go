package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean [targets...]",
		Short: "Remove the outputs and command records of the selected rules",
		Long:  targetsHelp,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := c.scope(cmd)
			if err != nil {
				return err
			}
			return c.app.Clean(cmd.Context(), args, scope)
		},
	}
}
