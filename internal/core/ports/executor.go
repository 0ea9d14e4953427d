package ports

import (
	"context"

	"go.trai.ch/snake/internal/core/domain"
)

// Executor runs the command of a rule.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs rule's script synchronously from the workflow root with the
	// positional INPUTn/OUTPUTn variables in its environment, and blocks until the
	// process exits.
	//
	// A non-zero exit is reported through the result's ExitCode, not as an error.
	// The error is reserved for commands that could not be started.
	Execute(ctx context.Context, wf *domain.Workflow, rule *domain.Rule) (domain.CommandResult, error)
}
