// Package selector resolves target expressions into the ordered set of rules to run.
package selector

import (
	"go.trai.ch/snake/internal/core/domain"
)

// StalenessChecker decides whether a single rule has to run.
type StalenessChecker interface {
	IsStale(wf *domain.Workflow, rule *domain.Rule) (bool, error)
}

// Selector expands targets over the rule registry of a workflow.
type Selector struct {
	checker StalenessChecker
}

// New creates a Selector.
func New(checker StalenessChecker) *Selector {
	return &Selector{checker: checker}
}

// All selects every stale rule of wf, plus every rule consuming an output of a
// selected rule.
func (s *Selector) All(wf *domain.Workflow, force bool) ([]*domain.Rule, error) {
	return s.propagate(wf, wf.Registry.Rules(), force)
}

// Upstream selects among the rules target is built from.
// Rules whose outputs the target transitively needs form the candidates, and the
// producer of target is one of them.
func (s *Selector) Upstream(wf *domain.Workflow, target domain.Artifact, force bool) ([]*domain.Rule, error) {
	reg := wf.Registry
	closure := make(map[*domain.Rule]struct{})
	needed := map[domain.Artifact]struct{}{target: {}}
	queue := []domain.Artifact{target}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		producer, ok := reg.OwnerOf(node)
		if !ok {
			continue
		}
		if _, seen := closure[producer]; seen {
			continue
		}
		closure[producer] = struct{}{}
		for _, in := range producer.Inputs() {
			if _, seen := needed[in]; !seen {
				needed[in] = struct{}{}
				queue = append(queue, in)
			}
		}
	}

	return s.propagate(wf, restrict(reg, closure), force)
}

// Downstream selects among the rules built from target.
// Only rules consuming target or one of its transitive products are candidates; the
// producer of target itself is not.
func (s *Selector) Downstream(wf *domain.Workflow, target domain.Artifact, force bool) ([]*domain.Rule, error) {
	reg := wf.Registry
	closure := make(map[*domain.Rule]struct{})
	reached := map[domain.Artifact]struct{}{target: {}}
	queue := []domain.Artifact{target}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		for _, consumer := range reg.ConsumersOf(node) {
			if _, seen := closure[consumer]; seen {
				continue
			}
			closure[consumer] = struct{}{}
			for _, out := range consumer.Outputs() {
				if _, seen := reached[out]; !seen {
					reached[out] = struct{}{}
					queue = append(queue, out)
				}
			}
		}
	}

	return s.propagate(wf, restrict(reg, closure), force)
}

// Exact selects the producer of target if it is stale or forced, ignoring the state
// of everything upstream of it.
func (s *Selector) Exact(wf *domain.Workflow, target domain.Artifact, force bool) ([]*domain.Rule, error) {
	producer, ok := wf.Registry.OwnerOf(target)
	if !ok {
		return nil, nil
	}
	stale, err := s.checker.IsStale(wf, producer)
	if err != nil {
		return nil, err
	}
	if stale || force {
		return []*domain.Rule{producer}, nil
	}
	return nil, nil
}

// Select expands one resolved target according to its mode.
func (s *Selector) Select(wf *domain.Workflow, target domain.Target) ([]*domain.Rule, error) {
	switch target.Mode {
	case domain.ModeExact:
		return s.Exact(wf, target.Node(), target.Force)
	case domain.ModeDownstream:
		return s.Downstream(wf, target.Node(), target.Force)
	default:
		return s.Upstream(wf, target.Node(), target.Force)
	}
}

// Resolve returns the rules to run for targets in declaration order.
// Without targets every stale rule is selected. Otherwise the per-target selections
// are united; a rule selected by several targets appears once.
func (s *Selector) Resolve(wf *domain.Workflow, targets []domain.Target) ([]*domain.Rule, error) {
	if len(targets) == 0 {
		return s.All(wf, false)
	}

	var union []*domain.Rule
	for _, t := range targets {
		rules, err := s.Select(wf, t)
		if err != nil {
			return nil, err
		}
		union = append(union, rules...)
	}
	return wf.Registry.Sort(union), nil
}

// propagate walks candidates in declaration order and keeps a rule when it is stale,
// forced, or consumes an output of a rule kept before it. Staleness is checked first
// so a missing input is reported even for forced rules.
func (s *Selector) propagate(wf *domain.Workflow, candidates []*domain.Rule, force bool) ([]*domain.Rule, error) {
	var selected []*domain.Rule
	updated := make(map[domain.Artifact]struct{})

	for _, rule := range candidates {
		stale, err := s.checker.IsStale(wf, rule)
		if err != nil {
			return nil, err
		}
		if !stale && !force && !consumesAny(rule, updated) {
			continue
		}
		selected = append(selected, rule)
		for _, out := range rule.Outputs() {
			updated[out] = struct{}{}
		}
	}
	return selected, nil
}

func consumesAny(rule *domain.Rule, artifacts map[domain.Artifact]struct{}) bool {
	for _, in := range rule.Inputs() {
		if _, ok := artifacts[in]; ok {
			return true
		}
	}
	return false
}

// restrict returns the rules of closure in declaration order.
func restrict(reg *domain.Registry, closure map[*domain.Rule]struct{}) []*domain.Rule {
	rules := make([]*domain.Rule, 0, len(closure))
	for _, r := range reg.Rules() {
		if _, ok := closure[r]; ok {
			rules = append(rules, r)
		}
	}
	return rules
}
