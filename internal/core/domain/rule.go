package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// CacheKey namespaces the persisted command record of a rule.
// It is a digest of the rule's ordered output paths.
type CacheKey string

// Rule describes one production step: a command turning its inputs into its outputs.
// A Rule is immutable once created.
type Rule struct {
	outputs []Artifact
	inputs  []Artifact
	command string
	script  string
	key     CacheKey
}

// NewRule creates a rule. The order of outputs and inputs is significant: it binds
// the positional OUTPUTn and INPUTn variables available to the command.
func NewRule(outputs, inputs []Artifact, command string) *Rule {
	r := &Rule{
		outputs: slices.Clone(outputs),
		inputs:  slices.Clone(inputs),
		command: command,
	}
	r.script = buildScript(r.outputs, r.inputs, command)
	r.key = computeCacheKey(r.outputs)
	return r
}

// Outputs returns the ordered output artifacts.
func (r *Rule) Outputs() []Artifact {
	return r.outputs
}

// Inputs returns the ordered input artifacts.
func (r *Rule) Inputs() []Artifact {
	return r.inputs
}

// Command returns the command template as declared.
func (r *Rule) Command() string {
	return r.command
}

// Script returns the effective command text: a preamble assigning the positional
// INPUTn/OUTPUTn variables followed by the declared command. This is the text that
// runs and the text compared against the command cache, so changing a rule's paths
// or its command both invalidate it.
func (r *Rule) Script() string {
	return r.script
}

// CacheKey returns the digest naming the rule's command record.
func (r *Rule) CacheKey() CacheKey {
	return r.key
}

// Bindings returns the positional variables as KEY=VALUE pairs, inputs first.
func (r *Rule) Bindings() []string {
	env := make([]string, 0, len(r.inputs)+len(r.outputs))
	for i, in := range r.inputs {
		env = append(env, fmt.Sprintf("INPUT%d=%s", i, in.Path()))
	}
	for i, out := range r.outputs {
		env = append(env, fmt.Sprintf("OUTPUT%d=%s", i, out.Path()))
	}
	return env
}

// Produces reports whether artifact is one of the rule's outputs.
func (r *Rule) Produces(artifact Artifact) bool {
	return slices.Contains(r.outputs, artifact)
}

// String renders the rule as "out1, out2 <- in1, in2".
func (r *Rule) String() string {
	return joinArtifacts(r.outputs) + " <- " + joinArtifacts(r.inputs)
}

func buildScript(outputs, inputs []Artifact, command string) string {
	assignments := make([]string, 0, len(inputs)+len(outputs))
	for i, in := range inputs {
		assignments = append(assignments, fmt.Sprintf("INPUT%d=%s;", i, shellQuote(in.Path())))
	}
	for i, out := range outputs {
		assignments = append(assignments, fmt.Sprintf("OUTPUT%d=%s;", i, shellQuote(out.Path())))
	}
	return strings.Join(assignments, " ") + "\n" + command
}

// shellQuote wraps s in single quotes for POSIX sh.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func computeCacheKey(outputs []Artifact) CacheKey {
	hasher := xxhash.New()
	for _, out := range outputs {
		_, _ = hasher.WriteString(out.Path())
		_, _ = hasher.Write([]byte{0}) // Separator
	}
	return CacheKey(fmt.Sprintf("%016x", hasher.Sum64()))
}
