package shell

import "go.trai.ch/snake/internal/core/ports"

// NewExecutorWithShell creates an Executor running scripts with the given shell.
// This is exported for testing purposes only.
func NewExecutorWithShell(logger ports.Logger, shell string) *Executor {
	return &Executor{logger: logger, shell: shell}
}

// ResolveEnvironment exposes resolveEnvironment for testing.
var ResolveEnvironment = resolveEnvironment
