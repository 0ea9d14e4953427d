package app

import (
	"context"
	"errors"
	"path/filepath"

	"go.trai.ch/snake/internal/adapters/watcher" //nolint:depguard // Debouncing is wired in app layer
	"go.trai.ch/snake/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// Watch runs the targets once and then again every time a source file or the workflow
// file changes, until ctx is done. Plans are confirmed automatically. A failing build
// is reported and the watch continues.
func (a *App) Watch(ctx context.Context, exprs []string, opts RunOptions) error {
	opts.Yes = true

	wf, err := a.load(opts.Scope, opts.StrictOrder)
	if err != nil {
		return err
	}
	defer func() { _ = a.watcher.Close() }()

	watched, err := a.watch(ctx, wf)
	if err != nil {
		return err
	}
	a.build(ctx, wf, exprs, opts)

	g, gctx := errgroup.WithContext(ctx)
	batches := make(chan []string)
	debouncer := watcher.NewDebouncer(a.debounce, func(paths []string) {
		select {
		case batches <- paths:
		case <-gctx.Done():
		}
	})

	g.Go(func() error {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
		return nil
	})
	g.Go(func() error {
		// Closing the watcher ends the event stream above.
		defer func() { _ = a.watcher.Close() }()
		for {
			select {
			case <-gctx.Done():
				return nil
			case paths := <-batches:
				if !touchesAny(paths, watched) {
					continue
				}
				a.logger.Info("change detected, rebuilding")
				next, err := a.load(opts.Scope, opts.StrictOrder)
				if err != nil {
					a.logger.Error(err)
					continue
				}
				if watched, err = a.watch(gctx, next); err != nil {
					return err
				}
				a.build(gctx, next, exprs, opts)
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// build runs one selection and logs instead of returning errors.
func (a *App) build(ctx context.Context, wf *domain.Workflow, exprs []string, opts RunOptions) {
	rules, err := a.selectRules(wf, exprs, opts.Dir, opts.Force)
	if err == nil {
		err = a.execute(ctx, wf, rules, opts)
	}
	if err != nil && ctx.Err() == nil && !errors.Is(err, domain.ErrBuildExecutionFailed) {
		a.logger.Error(err)
	}
}

// watch subscribes to the directories holding the workflow file and the workflow's
// source files. It returns the set of paths whose changes trigger a rebuild.
func (a *App) watch(ctx context.Context, wf *domain.Workflow) (map[string]struct{}, error) {
	watched := map[string]struct{}{wf.Path: {}}
	dirs := []string{wf.Root}
	for _, src := range wf.Registry.Sources() {
		watched[src.Path()] = struct{}{}
		dir := filepath.Dir(src.Path())
		if state, err := a.inspector.Stat(dir); err == nil && state.Exists {
			dirs = append(dirs, dir)
		}
	}
	if err := a.watcher.Watch(ctx, dirs); err != nil {
		return nil, err
	}
	return watched, nil
}

func touchesAny(paths []string, watched map[string]struct{}) bool {
	for _, p := range paths {
		if _, ok := watched[p]; ok {
			return true
		}
	}
	return false
}
