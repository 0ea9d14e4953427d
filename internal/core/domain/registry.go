// Package domain contains the core domain models of the rule dependency graph.
package domain

import (
	"go.trai.ch/zerr"
)

// Registry is the ordered collection of rules of one workflow.
//
// Besides declaration order it owns two adjacency indexes: the backward edges from an
// artifact to the rule producing it, and the forward edges from an artifact to the
// rules consuming it. A Registry is populated once while loading and is read-only
// afterwards.
type Registry struct {
	rules     []*Rule
	position  map[*Rule]int
	producers map[Artifact]*Rule
	consumers map[Artifact][]*Rule
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		position:  make(map[*Rule]int),
		producers: make(map[Artifact]*Rule),
		consumers: make(map[Artifact][]*Rule),
	}
}

// Register appends a rule in declaration order.
// It returns ErrDuplicateOutput if any declared output is already owned by a rule,
// in which case the registry is left unchanged.
func (g *Registry) Register(rule *Rule) error {
	seen := make(map[Artifact]struct{}, len(rule.outputs))
	for _, out := range rule.outputs {
		if owner, exists := g.producers[out]; exists {
			err := zerr.With(ErrDuplicateOutput, "artifact", out.Path())
			err = zerr.With(err, "rule", rule.String())
			return zerr.With(err, "owner", owner.String())
		}
		if _, dup := seen[out]; dup {
			err := zerr.With(ErrDuplicateOutput, "artifact", out.Path())
			err = zerr.With(err, "rule", rule.String())
			return zerr.With(err, "owner", rule.String())
		}
		seen[out] = struct{}{}
	}

	g.position[rule] = len(g.rules)
	g.rules = append(g.rules, rule)
	for _, out := range rule.outputs {
		g.producers[out] = rule
	}
	for _, in := range rule.inputs {
		consumers := g.consumers[in]
		// A rule listing the same input twice is one consumer edge.
		if len(consumers) > 0 && consumers[len(consumers)-1] == rule {
			continue
		}
		g.consumers[in] = append(consumers, rule)
	}
	return nil
}

// Rules returns the rules in declaration order.
func (g *Registry) Rules() []*Rule {
	return g.rules
}

// Len returns the number of registered rules.
func (g *Registry) Len() int {
	return len(g.rules)
}

// Index returns the declaration index of rule, or -1 if it is not registered.
func (g *Registry) Index(rule *Rule) int {
	if pos, ok := g.position[rule]; ok {
		return pos
	}
	return -1
}

// OwnerOf returns the rule producing artifact.
func (g *Registry) OwnerOf(artifact Artifact) (*Rule, bool) {
	rule, ok := g.producers[artifact]
	return rule, ok
}

// ConsumersOf returns the rules that list artifact as an input, in declaration order.
func (g *Registry) ConsumersOf(artifact Artifact) []*Rule {
	return g.consumers[artifact]
}

// IsDerivable reports whether some registered rule produces artifact.
func (g *Registry) IsDerivable(artifact Artifact) bool {
	_, ok := g.producers[artifact]
	return ok
}

// Sources returns every input artifact that no rule produces, in first-use order.
func (g *Registry) Sources() []Artifact {
	var sources []Artifact
	seen := make(map[Artifact]struct{})
	for _, rule := range g.rules {
		for _, in := range rule.inputs {
			if _, ok := seen[in]; ok || g.IsDerivable(in) {
				continue
			}
			seen[in] = struct{}{}
			sources = append(sources, in)
		}
	}
	return sources
}

// CheckOrder verifies that every producer is declared before its consumers.
// The selection algorithms inherit their ordering guarantee from declaration order,
// so a violation means an out-of-order workflow may run a consumer first.
// It returns ErrOutOfOrder describing the first violation found.
func (g *Registry) CheckOrder() error {
	for i, rule := range g.rules {
		for _, in := range rule.inputs {
			producer, ok := g.producers[in]
			if !ok || g.position[producer] < i {
				continue
			}
			err := zerr.With(ErrOutOfOrder, "rule", rule.String())
			err = zerr.With(err, "artifact", in.Path())
			return zerr.With(err, "producer", producer.String())
		}
	}
	return nil
}

// Sort filters declaration order down to the given rules.
// The result holds no duplicates and preserves the registry's ordering.
func (g *Registry) Sort(rules []*Rule) []*Rule {
	selected := make(map[*Rule]struct{}, len(rules))
	for _, r := range rules {
		selected[r] = struct{}{}
	}
	ordered := make([]*Rule, 0, len(selected))
	for _, r := range g.rules {
		if _, ok := selected[r]; ok {
			ordered = append(ordered, r)
		}
	}
	return ordered
}
