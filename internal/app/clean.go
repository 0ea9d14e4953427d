package app

import (
	"context"

	"go.trai.ch/snake/internal/core/domain"
	"go.trai.ch/snake/internal/engine/selector"
)

// everStale treats every rule as stale, reducing selection to pure graph traversal.
type everStale struct{}

func (everStale) IsStale(*domain.Workflow, *domain.Rule) (bool, error) {
	return true, nil
}

// Clean removes the declared outputs and command records of the rules the target
// expressions select, ignoring staleness. Without expressions every rule is cleaned.
func (a *App) Clean(_ context.Context, exprs []string, scope Scope) error {
	wf, err := a.load(scope, false)
	if err != nil {
		return err
	}

	rules := wf.Registry.Rules()
	if len(exprs) > 0 {
		targets, err := a.targets(exprs, scope.Dir, true)
		if err != nil {
			return err
		}
		rules, err = selector.New(everStale{}).Resolve(wf, targets)
		if err != nil {
			return err
		}
	}

	if len(rules) == 0 {
		a.renderer.Message(nothingToDo)
		return nil
	}

	for _, rule := range rules {
		if err := a.cache.Delete(wf.StateDir, rule.CacheKey()); err != nil {
			return err
		}
	}
	return a.removeOutputs(rules)
}
