package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every rule of the workflow in declaration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scope, err := c.scope(cmd)
			if err != nil {
				return err
			}
			return c.app.List(cmd.Context(), scope)
		},
	}
}
