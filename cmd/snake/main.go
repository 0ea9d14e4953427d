// Package main is the entry point for the snake build tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/snake/cmd/snake/commands"
	"go.trai.ch/snake/internal/app"
	"go.trai.ch/snake/internal/core/domain"
	"go.trai.ch/snake/internal/core/ports"
	_ "go.trai.ch/snake/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, provideComponents))
}

func provideComponents(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		return nil, nil, err
	}
	return c, func() { _ = c.Close() }, nil
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	// 2. Interface - CLI
	logs, _ := components.Logger.(commands.LogSettings)
	cli := commands.New(components.App, logs)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	return exitCode(cli.Execute(ctx), components.Logger)
}

// exitCode maps the outcome of a command to the process exit status. Build failures
// and declined plans have already been reported on the terminal, so only other errors
// are logged.
func exitCode(err error, logger ports.Logger) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, domain.ErrBuildExecutionFailed), errors.Is(err, domain.ErrPlanDeclined):
		return 1
	default:
		logger.Error(err)
		return 1
	}
}
