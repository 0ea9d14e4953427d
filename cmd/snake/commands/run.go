package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/snake/internal/app"
)

const targetsHelp = `Targets are paths, optionally prefixed:
  path    the rule producing path and everything it is built from
  ^path   everything built from path
  =path   only the rule producing path
  +...    include the selected rules even if they are up to date

Without targets every out-of-date rule runs.`

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [targets...]",
		Short: "Run the rules needed to bring targets up to date",
		Long:  targetsHelp,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.runOptions(cmd)
			if err != nil {
				return err
			}
			return c.app.Run(cmd.Context(), args, opts)
		},
	}
	addRunFlags(cmd)
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [targets...]",
		Short: "Run targets, then run them again whenever a source file changes",
		Long:  targetsHelp,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.runOptions(cmd)
			if err != nil {
				return err
			}
			return c.app.Watch(cmd.Context(), args, opts)
		},
	}
	addRunFlags(cmd)
	return cmd
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("yes", "y", false, "Run without asking for confirmation")
	cmd.Flags().Bool("force", false, "Run the selected rules even if they are up to date")
	cmd.Flags().String("clean-on-failure", "ask", "Remove outputs of a failed rule: ask, always or never")
	cmd.Flags().Bool("strict-order", false, "Reject rules declared before the producers of their inputs")
}

func (c *CLI) runOptions(cmd *cobra.Command) (app.RunOptions, error) {
	scope, err := c.scope(cmd)
	if err != nil {
		return app.RunOptions{}, err
	}
	policyFlag, _ := cmd.Flags().GetString("clean-on-failure")
	policy, err := app.ParseCleanPolicy(policyFlag)
	if err != nil {
		return app.RunOptions{}, err
	}

	yes, _ := cmd.Flags().GetBool("yes")
	force, _ := cmd.Flags().GetBool("force")
	verbose, _ := cmd.Flags().GetBool("verbose")
	strict, _ := cmd.Flags().GetBool("strict-order")

	return app.RunOptions{
		Scope:          scope,
		Yes:            yes,
		Force:          force,
		Verbose:        verbose,
		StrictOrder:    strict,
		CleanOnFailure: policy,
	}, nil
}
