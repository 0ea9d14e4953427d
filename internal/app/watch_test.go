package app_test

import (
	"context"
	"iter"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/snake/internal/core/domain"
	"go.trai.ch/snake/internal/core/ports"
	"go.uber.org/mock/gomock"
)

// expectWatcher makes the mock watcher stream events sent on the returned channel.
func (h *harness) expectWatcher() chan<- ports.WatchEvent {
	events := make(chan ports.WatchEvent)
	var once sync.Once

	h.watcher.EXPECT().Watch(gomock.Any(), []string{root, root}).Return(nil).AnyTimes()
	h.watcher.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](func(yield func(ports.WatchEvent) bool) {
		for event := range events {
			if !yield(event) {
				return
			}
		}
	})).AnyTimes()
	h.watcher.EXPECT().Close().DoAndReturn(func() error {
		once.Do(func() { close(events) })
		return nil
	}).AnyTimes()
	return events
}

func TestApp_Watch_RebuildsOnSourceChange(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t)
		wf, first, second := chain(t)
		h.expectLoad(wf)
		h.world.touch("/w/a", "/w/b", "/w/c")
		h.world.records[first.CacheKey()] = first.Script()
		h.world.records[second.CacheKey()] = second.Script()
		events := h.expectWatcher()

		gomock.InOrder(
			h.renderer.EXPECT().Message("Nothing to do."),
			h.logger.EXPECT().Info("change detected, rebuilding"),
			h.renderer.EXPECT().RenderPlan([]*domain.Rule{first, second}),
		)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- h.app.WithDebounce(100*time.Millisecond).Watch(ctx, nil, runOptions())
		}()
		synctest.Wait()
		assert.Empty(t, h.world.runs())

		h.world.touch("/w/a")
		events <- ports.WatchEvent{Path: "/w/a", Operation: ports.OpWrite}
		events <- ports.WatchEvent{Path: "/w/a", Operation: ports.OpWrite}
		time.Sleep(200 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, []*domain.Rule{first, second}, h.world.runs())

		// Outputs are not watched, so writing one triggers nothing.
		events <- ports.WatchEvent{Path: "/w/c", Operation: ports.OpWrite}
		time.Sleep(200 * time.Millisecond)
		synctest.Wait()
		assert.Len(t, h.world.runs(), 2)

		cancel()
		require.NoError(t, <-done)
	})
}

func TestApp_Watch_LoadError(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Discover(root).Return("", domain.ErrWorkflowNotFound)

	err := h.app.Watch(context.Background(), nil, runOptions())
	require.Error(t, err)
}

func TestApp_Watch_BuildErrorsDoNotStopWatching(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t)
		wf, _, _ := chain(t)
		h.expectLoad(wf)
		h.expectWatcher()

		// The source is missing, so every build fails during selection.
		h.logger.EXPECT().Error(gomock.Any())

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- h.app.Watch(ctx, nil, runOptions())
		}()
		synctest.Wait()

		cancel()
		require.NoError(t, <-done)
	})
}
