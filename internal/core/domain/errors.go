package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicateOutput is returned when two rules declare the same output artifact.
	ErrDuplicateOutput = zerr.New("output artifact declared by multiple rules")

	// ErrMissingInput is returned when an input neither exists nor is produced by any rule.
	ErrMissingInput = zerr.New("can't find input file")

	// ErrInvalidTarget is returned when a target expression cannot be parsed.
	ErrInvalidTarget = zerr.New("couldn't parse target expression")

	// ErrOutOfOrder is returned when a rule is declared before the producer of one of its inputs.
	ErrOutOfOrder = zerr.New("rule declared before the producer of its input")

	// ErrInvalidRule is returned when a workflow file declares a malformed rule.
	ErrInvalidRule = zerr.New("invalid rule")

	// ErrCommandFailed is returned when a rule's command exits non-zero or cannot start.
	ErrCommandFailed = zerr.New("command failed")

	// ErrBuildExecutionFailed is returned when the batch stopped on a failing rule.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrWorkflowNotFound is returned when no workflow file can be found.
	ErrWorkflowNotFound = zerr.New("could not find a workflow file")

	// ErrWorkflowRead is returned when the workflow file cannot be read.
	ErrWorkflowRead = zerr.New("failed to read workflow file")

	// ErrWorkflowParse is returned when the workflow file cannot be parsed.
	ErrWorkflowParse = zerr.New("failed to parse workflow file")

	// ErrUnsupportedWorkflow is returned when the workflow file format is unknown.
	ErrUnsupportedWorkflow = zerr.New("unsupported workflow file format")

	// ErrCacheRead is returned when a command record cannot be read.
	ErrCacheRead = zerr.New("failed to read command record")

	// ErrCacheWrite is returned when a command record cannot be written.
	ErrCacheWrite = zerr.New("failed to write command record")

	// ErrPlanDeclined is returned when the user declines the execution plan.
	ErrPlanDeclined = zerr.New("plan declined")

	// ErrConfirmationRequired is returned when a plan needs confirmation but stdin is not interactive.
	ErrConfirmationRequired = zerr.New("confirmation required: stdin is not a terminal, pass --yes")
)

// WrapKind wraps cause under the message of kind, keeping both in the chain so that
// errors.Is matches the kind as well as the cause.
func WrapKind(kind, cause error) error {
	return zerr.Wrap(kindCause{kind: kind, cause: cause}, kind.Error())
}

// kindCause renders as its cause and unwraps to both the kind and the cause.
type kindCause struct {
	kind  error
	cause error
}

func (k kindCause) Error() string { return k.cause.Error() }

func (k kindCause) Unwrap() []error { return []error{k.kind, k.cause} }
