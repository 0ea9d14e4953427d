package domain

// RunStatus is the lifecycle state of one rule within a batch.
type RunStatus string

const (
	// RunStatusPlanned indicates the rule is selected and waiting its turn.
	RunStatusPlanned RunStatus = "planned"
	// RunStatusRunning indicates the rule's command is executing.
	RunStatusRunning RunStatus = "running"
	// RunStatusSucceeded indicates the command exited zero.
	RunStatusSucceeded RunStatus = "succeeded"
	// RunStatusFailed indicates the command failed. It ends the whole batch.
	RunStatusFailed RunStatus = "failed"
)

// IsTerminal reports whether no further transition can happen from s.
func (s RunStatus) IsTerminal() bool {
	return s == RunStatusSucceeded || s == RunStatusFailed
}
