package domain

import "time"

// CommandRecord is the persisted copy of the last command text a rule ran with.
type CommandRecord struct {
	Key       CacheKey  `json:"key"`
	Rule      string    `json:"rule,omitzero"`
	Command   string    `json:"command"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// NewCommandRecord captures the current command text of rule.
func NewCommandRecord(rule *Rule, now time.Time) CommandRecord {
	return CommandRecord{
		Key:       rule.CacheKey(),
		Rule:      rule.String(),
		Command:   rule.Script(),
		UpdatedAt: now,
	}
}

// CommandResult is the outcome of one synchronous command invocation.
type CommandResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Duration time.Duration
}

// Succeeded reports whether the command exited zero.
func (r CommandResult) Succeeded() bool {
	return r.ExitCode == 0
}

// FileState is what the staleness checks need to know about one path.
type FileState struct {
	Exists  bool
	ModTime time.Time
}
