package app_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/snake/internal/adapters/fs"
	"go.trai.ch/snake/internal/app"
	"go.trai.ch/snake/internal/core/domain"
	"go.trai.ch/snake/internal/core/ports/mocks"
	"go.trai.ch/snake/internal/engine/oracle"
	"go.trai.ch/snake/internal/engine/scheduler"
	"go.trai.ch/snake/internal/engine/selector"
	"go.uber.org/mock/gomock"
)

const (
	root         = "/w"
	workflowPath = "/w/Snakefile.yaml"
)

// world is an in-memory file system and command cache shared by the mocks.
type world struct {
	mu      sync.Mutex
	clock   time.Time
	files   map[string]time.Time
	records map[domain.CacheKey]string
	ran     []*domain.Rule
	fail    map[*domain.Rule]int
}

func (w *world) touch(paths ...string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, p := range paths {
		w.clock = w.clock.Add(time.Second)
		w.files[p] = w.clock
	}
}

func (w *world) exists(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.files[path]
	return ok
}

func (w *world) runs() []*domain.Rule {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]*domain.Rule(nil), w.ran...)
}

type harness struct {
	world     *world
	loader    *mocks.MockWorkflowLoader
	inspector *mocks.MockFileInspector
	remover   *mocks.MockOutputRemover
	cache     *mocks.MockCommandCache
	executor  *mocks.MockExecutor
	renderer  *mocks.MockRenderer
	prompter  *mocks.MockPrompter
	watcher   *mocks.MockWatcher
	logger    *mocks.MockLogger
	app       *app.App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	w := &world{
		clock:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		files:   make(map[string]time.Time),
		records: make(map[domain.CacheKey]string),
		fail:    make(map[*domain.Rule]int),
	}
	h := &harness{
		world:     w,
		loader:    mocks.NewMockWorkflowLoader(ctrl),
		inspector: mocks.NewMockFileInspector(ctrl),
		remover:   mocks.NewMockOutputRemover(ctrl),
		cache:     mocks.NewMockCommandCache(ctrl),
		executor:  mocks.NewMockExecutor(ctrl),
		renderer:  mocks.NewMockRenderer(ctrl),
		prompter:  mocks.NewMockPrompter(ctrl),
		watcher:   mocks.NewMockWatcher(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}

	h.inspector.EXPECT().Stat(gomock.Any()).DoAndReturn(func(path string) (domain.FileState, error) {
		w.mu.Lock()
		defer w.mu.Unlock()
		if path == root {
			return domain.FileState{Exists: true}, nil
		}
		mod, ok := w.files[path]
		return domain.FileState{Exists: ok, ModTime: mod}, nil
	}).AnyTimes()

	h.cache.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ string, key domain.CacheKey) (*domain.CommandRecord, error) {
			w.mu.Lock()
			defer w.mu.Unlock()
			cmd, ok := w.records[key]
			if !ok {
				return nil, nil
			}
			return &domain.CommandRecord{Key: key, Command: cmd}, nil
		}).AnyTimes()
	h.cache.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ string, record domain.CommandRecord) error {
			w.mu.Lock()
			defer w.mu.Unlock()
			w.records[record.Key] = record.Command
			return nil
		}).AnyTimes()
	h.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ string, key domain.CacheKey) error {
			w.mu.Lock()
			defer w.mu.Unlock()
			delete(w.records, key)
			return nil
		}).AnyTimes()

	h.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *domain.Workflow, rule *domain.Rule) (domain.CommandResult, error) {
			w.mu.Lock()
			w.ran = append(w.ran, rule)
			code := w.fail[rule]
			w.mu.Unlock()

			w.touch(domain.ArtifactPaths(rule.Outputs())...)
			if code != 0 {
				return domain.CommandResult{ExitCode: code, Stderr: []byte("boom")}, nil
			}
			return domain.CommandResult{}, nil
		}).AnyTimes()

	telemetry := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)
	telemetry.EXPECT().Record(gomock.Any()).Return(vertex).AnyTimes()
	vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()

	h.renderer.EXPECT().OnRuleStart(gomock.Any(), gomock.Any()).AnyTimes()
	h.renderer.EXPECT().OnRuleComplete(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	h.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	o := oracle.New(h.inspector, h.cache)
	h.app = app.New(app.Deps{
		Loader:        h.loader,
		Canonicalizer: fs.NewCanonicalizer(),
		Inspector:     h.inspector,
		Remover:       h.remover,
		Cache:         h.cache,
		Oracle:        o,
		Selector:      selector.New(o),
		Scheduler:     scheduler.NewScheduler(h.executor, h.cache, telemetry, h.renderer),
		Renderer:      h.renderer,
		Prompter:      h.prompter,
		Watcher:       h.watcher,
		Logger:        h.logger,
	})
	return h
}

func newRule(outputs, inputs []string) *domain.Rule {
	return domain.NewRule(domain.NewArtifacts(outputs), domain.NewArtifacts(inputs), "cp $INPUT0 $OUTPUT0")
}

// chain declares b <- a and c <- b.
func chain(t *testing.T) (*domain.Workflow, *domain.Rule, *domain.Rule) {
	t.Helper()
	first := newRule([]string{"/w/b"}, []string{"/w/a"})
	second := newRule([]string{"/w/c"}, []string{"/w/b"})
	return workflow(t, first, second), first, second
}

func workflow(t *testing.T, rules ...*domain.Rule) *domain.Workflow {
	t.Helper()
	reg := domain.NewRegistry()
	for _, r := range rules {
		require.NoError(t, reg.Register(r))
	}
	return domain.NewWorkflow(workflowPath, reg)
}

// expectLoad makes every discovery in root load wf.
func (h *harness) expectLoad(wf *domain.Workflow) {
	h.loader.EXPECT().Discover(root).Return(workflowPath, nil).AnyTimes()
	h.loader.EXPECT().Load(workflowPath).Return(wf, nil).AnyTimes()
}

func runOptions() app.RunOptions {
	return app.RunOptions{Scope: app.Scope{Dir: root}, Yes: true}
}
