// Package commands implements the CLI commands for snake.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/snake/internal/app"
	"go.trai.ch/snake/internal/build"
	"go.trai.ch/zerr"
)

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, exprs []string, opts app.RunOptions) error
	List(ctx context.Context, scope app.Scope) error
	Clean(ctx context.Context, exprs []string, scope app.Scope) error
	Watch(ctx context.Context, exprs []string, opts app.RunOptions) error
}

// LogSettings adjusts the logger from global flags.
type LogSettings interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// CLI represents the command line interface for snake.
type CLI struct {
	app     Application
	logs    LogSettings
	rootCmd *cobra.Command
	getwd   func() (string, error)
}

// New creates a new CLI instance with the given app. logs may be nil.
func New(a Application, logs LogSettings) *CLI {
	rootCmd := &cobra.Command{
		Use:           "snake",
		Short:         "Rebuild the outputs of a workflow whose inputs or commands changed",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// -v is verbose, so --version is declared without a shorthand before cobra adds its own.
	rootCmd.Flags().Bool("version", false, "Print the application version")
	rootCmd.InitDefaultVersionFlag()

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("file", "f", "", "Workflow file (default: Snakefile.yaml, Snakefile.yml or Snakefile.hcl)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Echo commands and log debug output")
	rootCmd.PersistentFlags().String("log-format", "pretty", "Log format: pretty or json")

	c := &CLI{
		app:     a,
		logs:    logs,
		rootCmd: rootCmd,
		getwd:   os.Getwd,
	}
	rootCmd.PersistentPreRunE = c.configureLogging

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newWatchCmd())
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

func (c *CLI) configureLogging(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("log-format")
	if format != "pretty" && format != "json" {
		return zerr.With(zerr.New("invalid log format"), "format", format)
	}
	if c.logs == nil {
		return nil
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	c.logs.SetVerbose(verbose)
	c.logs.SetJSON(format == "json")
	return nil
}

func (c *CLI) scope(cmd *cobra.Command) (app.Scope, error) {
	dir, err := c.getwd()
	if err != nil {
		return app.Scope{}, zerr.Wrap(err, "failed to determine working directory")
	}
	file, _ := cmd.Flags().GetString("file")
	return app.Scope{Dir: dir, File: file}, nil
}
