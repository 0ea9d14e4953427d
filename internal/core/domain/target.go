package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// TraversalMode selects which slice of the graph a target expands to.
type TraversalMode int

const (
	// ModeUpstream selects the target and everything it is built from.
	ModeUpstream TraversalMode = iota
	// ModeDownstream selects everything built from the target.
	ModeDownstream
	// ModeExact selects only the rule producing the target.
	ModeExact
)

// String returns the name of the mode.
func (m TraversalMode) String() string {
	switch m {
	case ModeDownstream:
		return "downstream"
	case ModeExact:
		return "exact"
	default:
		return "upstream"
	}
}

const (
	forcePrefix      = '+'
	downstreamPrefix = '^'
	exactPrefix      = '='
)

// Target is a parsed target expression of the form [+][^|=]path.
type Target struct {
	// Expression is the text the target was parsed from.
	Expression string
	// Force includes selected rules regardless of staleness.
	Force bool
	// Mode is the traversal mode.
	Mode TraversalMode
	// Path is the path as written in the expression.
	Path string
	// Artifact is the canonical node the path refers to. It is set by Resolve.
	Artifact Artifact
}

// ParseTarget parses a target expression.
// "+" forces, "^" selects downstream, "=" selects exact and the default is upstream.
// At most one "+" and one mode prefix are consumed; anything after them is the path,
// so "++a" forces the path "+a". It returns ErrInvalidTarget when the path is empty.
func ParseTarget(expr string) (Target, error) {
	t := Target{Expression: expr, Mode: ModeUpstream}
	rest := expr

	if rest != "" && rest[0] == forcePrefix {
		t.Force = true
		rest = rest[1:]
	}
	if rest != "" {
		switch rest[0] {
		case downstreamPrefix:
			t.Mode = ModeDownstream
			rest = rest[1:]
		case exactPrefix:
			t.Mode = ModeExact
			rest = rest[1:]
		}
	}

	if strings.TrimSpace(rest) == "" {
		return Target{}, zerr.With(ErrInvalidTarget, "expression", expr)
	}

	t.Path = rest
	return t, nil
}

// ParseTargets parses every expression, stopping at the first malformed one.
func ParseTargets(exprs []string) ([]Target, error) {
	targets := make([]Target, 0, len(exprs))
	for _, expr := range exprs {
		t, err := ParseTarget(expr)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, nil
}

// Resolve returns a copy of the target bound to its canonical artifact path.
func (t Target) Resolve(canonicalPath string) Target {
	t.Artifact = NewArtifact(canonicalPath)
	return t
}

// Node returns the artifact the target refers to, falling back to the raw path when
// the target was never resolved.
func (t Target) Node() Artifact {
	if t.Artifact.IsZero() {
		return NewArtifact(t.Path)
	}
	return t.Artifact
}
