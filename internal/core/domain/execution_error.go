package domain

import "fmt"

// ExecutionError reports the rule whose command failed, with everything captured
// from it. Callers use it to show the command and stderr and to decide whether the
// rule's outputs should be removed.
type ExecutionError struct {
	Rule   *Rule
	Result CommandResult
	// Cause is set when the command could not be started at all.
	Cause error
}

// Error implements error.
func (e *ExecutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("command failed for %s: %v", e.Rule, e.Cause)
	}
	return fmt.Sprintf("command failed for %s: exit status %d", e.Rule, e.Result.ExitCode)
}

// Unwrap exposes ErrCommandFailed and the start failure, if any.
func (e *ExecutionError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrCommandFailed, e.Cause}
	}
	return []error{ErrCommandFailed}
}
