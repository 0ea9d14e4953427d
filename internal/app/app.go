// Package app implements the application layer for snake.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.trai.ch/snake/internal/core/domain"
	"go.trai.ch/snake/internal/core/ports"
	"go.trai.ch/snake/internal/engine/oracle"
	"go.trai.ch/snake/internal/engine/scheduler"
	"go.trai.ch/snake/internal/engine/selector"
	"go.trai.ch/zerr"
)

const (
	confirmQuestion = "Confirm?"
	eraseQuestion   = "Erase output files from step that errored?"
	nothingToDo     = "Nothing to do."
)

// DefaultDebounce is how long watch mode waits for file changes to settle.
const DefaultDebounce = 200 * time.Millisecond

// Deps lists the collaborators of an App.
type Deps struct {
	Loader        ports.WorkflowLoader
	Canonicalizer ports.PathCanonicalizer
	Inspector     ports.FileInspector
	Remover       ports.OutputRemover
	Cache         ports.CommandCache
	Oracle        *oracle.Oracle
	Selector      *selector.Selector
	Scheduler     *scheduler.Scheduler
	Renderer      ports.Renderer
	Prompter      ports.Prompter
	Watcher       ports.Watcher
	Logger        ports.Logger
}

// App represents the main application logic.
type App struct {
	loader        ports.WorkflowLoader
	canonicalizer ports.PathCanonicalizer
	inspector     ports.FileInspector
	remover       ports.OutputRemover
	cache         ports.CommandCache
	oracle        *oracle.Oracle
	selector      *selector.Selector
	scheduler     *scheduler.Scheduler
	renderer      ports.Renderer
	prompter      ports.Prompter
	watcher       ports.Watcher
	logger        ports.Logger
	debounce      time.Duration
}

// New creates a new App instance.
func New(d Deps) *App {
	return &App{
		loader:        d.Loader,
		canonicalizer: d.Canonicalizer,
		inspector:     d.Inspector,
		remover:       d.Remover,
		cache:         d.Cache,
		oracle:        d.Oracle,
		selector:      d.Selector,
		scheduler:     d.Scheduler,
		renderer:      d.Renderer,
		prompter:      d.Prompter,
		watcher:       d.Watcher,
		logger:        d.Logger,
		debounce:      DefaultDebounce,
	}
}

// WithDebounce sets the quiet window watch mode waits for before rebuilding.
func (a *App) WithDebounce(d time.Duration) *App {
	a.debounce = d
	return a
}

// Scope locates the workflow a command operates on.
type Scope struct {
	// Dir is the directory target paths are relative to and where discovery starts.
	Dir string
	// File is the workflow file. When empty it is discovered from Dir.
	File string
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	Scope
	// Yes skips the plan confirmation.
	Yes bool
	// Force selects rules regardless of staleness.
	Force bool
	// Verbose echoes each command before it runs.
	Verbose bool
	// StrictOrder rejects workflows that declare a consumer before its producer.
	StrictOrder bool
	// CleanOnFailure decides what happens to the outputs of a failed rule.
	CleanOnFailure CleanPolicy
}

// Run loads the workflow, selects the rules the target expressions call for and runs
// them in declaration order after confirmation. Without expressions every stale rule
// is selected.
func (a *App) Run(ctx context.Context, exprs []string, opts RunOptions) error {
	wf, err := a.load(opts.Scope, opts.StrictOrder)
	if err != nil {
		return err
	}

	rules, err := a.selectRules(wf, exprs, opts.Dir, opts.Force)
	if err != nil {
		return err
	}

	return a.execute(ctx, wf, rules, opts)
}

// List prints every rule of the workflow in declaration order.
func (a *App) List(_ context.Context, scope Scope) error {
	wf, err := a.load(scope, false)
	if err != nil {
		return err
	}
	a.renderer.RenderRules(wf.Registry.Rules())
	return nil
}

func (a *App) load(scope Scope, strictOrder bool) (*domain.Workflow, error) {
	path := scope.File
	if path == "" {
		discovered, err := a.loader.Discover(scope.Dir)
		if err != nil {
			return nil, err
		}
		path = discovered
	} else {
		resolved, err := a.canonicalizer.Canonicalize(scope.Dir, path)
		if err != nil {
			return nil, err
		}
		path = resolved
	}

	wf, err := a.loader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load workflow")
	}

	if err := wf.Registry.CheckOrder(); err != nil {
		if strictOrder {
			return nil, err
		}
		a.logger.Warn(describe(err))
	}
	return wf, nil
}

// targets parses exprs and binds each target to its canonical path relative to dir.
func (a *App) targets(exprs []string, dir string, force bool) ([]domain.Target, error) {
	targets, err := domain.ParseTargets(exprs)
	if err != nil {
		return nil, err
	}
	for i, t := range targets {
		canonical, err := a.canonicalizer.Canonicalize(dir, t.Path)
		if err != nil {
			return nil, err
		}
		t.Force = t.Force || force
		targets[i] = t.Resolve(canonical)
	}
	return targets, nil
}

func (a *App) selectRules(wf *domain.Workflow, exprs []string, dir string, force bool) ([]*domain.Rule, error) {
	if len(exprs) == 0 {
		return a.selector.All(wf, force)
	}
	targets, err := a.targets(exprs, dir, force)
	if err != nil {
		return nil, err
	}
	return a.selector.Resolve(wf, targets)
}

func (a *App) execute(ctx context.Context, wf *domain.Workflow, rules []*domain.Rule, opts RunOptions) error {
	if len(rules) == 0 {
		a.renderer.Message(nothingToDo)
		return nil
	}

	a.explain(wf, rules)
	a.renderer.RenderPlan(rules)
	if err := a.confirm(opts.Yes); err != nil {
		return err
	}

	err := a.scheduler.Run(ctx, wf, rules, scheduler.Options{Verbose: opts.Verbose})
	var execErr *domain.ExecutionError
	if !errors.As(err, &execErr) {
		return err
	}

	a.renderer.RenderFailure(execErr)
	if cleanupErr := a.cleanupFailed(execErr.Rule, opts.CleanOnFailure); cleanupErr != nil {
		return errors.Join(domain.ErrBuildExecutionFailed, err, cleanupErr)
	}
	return errors.Join(domain.ErrBuildExecutionFailed, err)
}

// explain logs why each planned rule runs.
func (a *App) explain(wf *domain.Workflow, rules []*domain.Rule) {
	for _, rule := range rules {
		reason, err := a.oracle.Explain(wf, rule)
		if err != nil {
			continue
		}
		if !reason.Stale() {
			reason = "forced or downstream of a rebuilt output"
		}
		a.logger.Debug(fmt.Sprintf("%s: %s", rule, reason))
	}
}

func (a *App) confirm(yes bool) error {
	if yes {
		return nil
	}
	if !a.prompter.Interactive() {
		return domain.ErrConfirmationRequired
	}
	ok, err := a.prompter.Confirm(confirmQuestion)
	if err != nil {
		return err
	}
	if !ok {
		a.renderer.Message("Exiting...")
		return domain.ErrPlanDeclined
	}
	return nil
}

// cleanupFailed removes the outputs of the failed rule as policy dictates. The command
// record written before the attempt is kept.
func (a *App) cleanupFailed(rule *domain.Rule, policy CleanPolicy) error {
	switch policy {
	case CleanNever:
		return nil
	case CleanAlways:
	default:
		if !a.prompter.Interactive() {
			a.logger.Warn("keeping outputs of the failed step: stdin is not a terminal")
			return nil
		}
		ok, err := a.prompter.Confirm(eraseQuestion)
		if err != nil || !ok {
			return err
		}
	}

	return a.removeOutputs([]*domain.Rule{rule})
}

func (a *App) removeOutputs(rules []*domain.Rule) error {
	var paths []string
	for _, rule := range rules {
		paths = append(paths, domain.ArtifactPaths(rule.Outputs())...)
	}
	removed, err := a.remover.Remove(paths)
	for _, path := range removed {
		a.renderer.Message("Removing... " + path)
	}
	return err
}

// describe renders err as its message followed by its metadata.
func describe(err error) string {
	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		return err.Error()
	}
	msg := zErr.Message()
	for _, key := range []string{"rule", "artifact", "producer"} {
		if v, ok := zErr.Metadata()[key]; ok {
			msg += fmt.Sprintf(" %s=%v", key, v)
		}
	}
	return msg
}
