// Package oracle decides whether a rule has to run again.
package oracle

import (
	"time"

	"go.trai.ch/snake/internal/core/domain"
	"go.trai.ch/snake/internal/core/ports"
	"go.trai.ch/zerr"
)

// Reason explains the staleness verdict of a rule.
type Reason string

const (
	// ReasonFresh means the rule's outputs are up to date.
	ReasonFresh Reason = "fresh"
	// ReasonMissing means one of the rule's inputs or outputs does not exist yet.
	ReasonMissing Reason = "missing"
	// ReasonOutdated means an input was modified after the oldest output.
	ReasonOutdated Reason = "outdated"
	// ReasonCommandChanged means the command text differs from the one last run.
	ReasonCommandChanged Reason = "command-changed"
)

// Stale reports whether the reason requires the rule to run.
func (r Reason) Stale() bool {
	return r != ReasonFresh
}

// Oracle compares filesystem timestamps and recorded command text.
type Oracle struct {
	fs    ports.FileInspector
	cache ports.CommandCache
}

// New creates an Oracle.
func New(fs ports.FileInspector, cache ports.CommandCache) *Oracle {
	return &Oracle{fs: fs, cache: cache}
}

// IsStale reports whether rule has to run.
// It returns ErrMissingInput if an input neither exists nor is produced by any rule of wf.
func (o *Oracle) IsStale(wf *domain.Workflow, rule *domain.Rule) (bool, error) {
	reason, err := o.Explain(wf, rule)
	if err != nil {
		return false, err
	}
	return reason.Stale(), nil
}

// Explain returns the reason behind the staleness verdict of rule.
func (o *Oracle) Explain(wf *domain.Workflow, rule *domain.Rule) (Reason, error) {
	inputs, err := o.stat(rule.Inputs())
	if err != nil {
		return "", err
	}
	for i, in := range rule.Inputs() {
		if !inputs[i].Exists && !wf.Registry.IsDerivable(in) {
			err := zerr.With(domain.ErrMissingInput, "artifact", in.Path())
			return "", zerr.With(err, "rule", rule.String())
		}
	}

	outputs, err := o.stat(rule.Outputs())
	if err != nil {
		return "", err
	}
	if !allExist(inputs) || !allExist(outputs) {
		return ReasonMissing, nil
	}

	if newest(inputs).After(oldest(outputs)) {
		return ReasonOutdated, nil
	}

	changed, err := o.commandChanged(wf, rule)
	if err != nil {
		return "", err
	}
	if changed {
		return ReasonCommandChanged, nil
	}
	return ReasonFresh, nil
}

func (o *Oracle) commandChanged(wf *domain.Workflow, rule *domain.Rule) (bool, error) {
	record, err := o.cache.Get(wf.StateDir, rule.CacheKey())
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to check command record"), "rule", rule.String())
	}
	return record == nil || record.Command != rule.Script(), nil
}

func (o *Oracle) stat(artifacts []domain.Artifact) ([]domain.FileState, error) {
	states := make([]domain.FileState, len(artifacts))
	for i, a := range artifacts {
		state, err := o.fs.Stat(a.Path())
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to stat artifact"), "artifact", a.Path())
		}
		states[i] = state
	}
	return states, nil
}

func allExist(states []domain.FileState) bool {
	for _, s := range states {
		if !s.Exists {
			return false
		}
	}
	return true
}

// newest returns the latest modification time, or the zero time for no files.
func newest(states []domain.FileState) time.Time {
	var t time.Time
	for _, s := range states {
		if s.ModTime.After(t) {
			t = s.ModTime
		}
	}
	return t
}

// oldest returns the earliest modification time. With no files nothing can be older
// than it, so an input never outdates a rule without outputs.
func oldest(states []domain.FileState) time.Time {
	if len(states) == 0 {
		return maxTime
	}
	t := states[0].ModTime
	for _, s := range states[1:] {
		if s.ModTime.Before(t) {
			t = s.ModTime
		}
	}
	return t
}

var maxTime = time.Unix(1<<62, 0)
