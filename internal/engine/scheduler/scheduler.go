// Package scheduler runs a selected batch of rules in order.
package scheduler

import (
	"context"
	"sync"
	"time"

	"go.trai.ch/snake/internal/core/domain"
	"go.trai.ch/snake/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options controls a single batch.
type Options struct {
	// Verbose echoes each rule's script before it runs.
	Verbose bool
}

// Scheduler executes rules one at a time and stops at the first failure.
type Scheduler struct {
	executor  ports.Executor
	cache     ports.CommandCache
	telemetry ports.Telemetry
	renderer  ports.Renderer
	now       func() time.Time

	mu     sync.RWMutex
	status map[*domain.Rule]domain.RunStatus
}

// NewScheduler creates a new Scheduler.
func NewScheduler(
	executor ports.Executor,
	cache ports.CommandCache,
	telemetry ports.Telemetry,
	renderer ports.Renderer,
) *Scheduler {
	return &Scheduler{
		executor:  executor,
		cache:     cache,
		telemetry: telemetry,
		renderer:  renderer,
		now:       time.Now,
		status:    make(map[*domain.Rule]domain.RunStatus),
	}
}

// Run executes rules strictly in the given order.
//
// Before each command runs, its text is recorded in the command cache. A command that
// exits non-zero or cannot be started stops the batch with a *domain.ExecutionError;
// rules that already succeeded keep their outputs. A cancelled context stops the
// batch before the next rule starts.
func (s *Scheduler) Run(ctx context.Context, wf *domain.Workflow, rules []*domain.Rule, opts Options) error {
	s.initStatuses(rules)

	for _, rule := range rules {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.runRule(ctx, wf, rule, opts); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scheduler) runRule(ctx context.Context, wf *domain.Workflow, rule *domain.Rule, opts Options) error {
	s.updateStatus(rule, domain.RunStatusRunning)
	s.renderer.OnRuleStart(rule, opts.Verbose)
	start := s.now()

	vertex := s.telemetry.Record(rule.String())

	err := s.execute(ctx, wf, rule)
	if err != nil {
		vertex.Log(domain.LogLevelError, err.Error())
		s.updateStatus(rule, domain.RunStatusFailed)
		s.renderer.OnRuleComplete(rule, domain.RunStatusFailed, s.now().Sub(start))
		vertex.Complete(err)
		return err
	}

	s.updateStatus(rule, domain.RunStatusSucceeded)
	s.renderer.OnRuleComplete(rule, domain.RunStatusSucceeded, s.now().Sub(start))
	vertex.Complete(nil)
	return nil
}

func (s *Scheduler) execute(ctx context.Context, wf *domain.Workflow, rule *domain.Rule) error {
	record := domain.NewCommandRecord(rule, s.now())
	if err := s.cache.Put(wf.StateDir, record); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to record command"), "rule", rule.String())
	}

	result, err := s.executor.Execute(ctx, wf, rule)
	if err != nil {
		return &domain.ExecutionError{Rule: rule, Result: result, Cause: err}
	}
	if !result.Succeeded() {
		return &domain.ExecutionError{Rule: rule, Result: result}
	}
	return nil
}

// Statuses returns a copy of the status of every rule of the current batch.
func (s *Scheduler) Statuses() map[*domain.Rule]domain.RunStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	statuses := make(map[*domain.Rule]domain.RunStatus, len(s.status))
	for rule, status := range s.status {
		statuses[rule] = status
	}
	return statuses
}

// initStatuses marks every rule of a new batch as planned.
func (s *Scheduler) initStatuses(rules []*domain.Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = make(map[*domain.Rule]domain.RunStatus, len(rules))
	for _, rule := range rules {
		s.status[rule] = domain.RunStatusPlanned
	}
}

func (s *Scheduler) updateStatus(rule *domain.Rule, status domain.RunStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[rule] = status
}
