package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/snake/internal/app"
	"go.trai.ch/snake/internal/core/domain"
	"go.uber.org/mock/gomock"
)

func TestApp_Run_AllThenNothingToDo(t *testing.T) {
	h := newHarness(t)
	wf, first, second := chain(t)
	h.expectLoad(wf)
	h.world.touch("/w/a")

	gomock.InOrder(
		h.renderer.EXPECT().RenderPlan([]*domain.Rule{first, second}),
		h.renderer.EXPECT().Message("Nothing to do."),
	)

	require.NoError(t, h.app.Run(context.Background(), nil, runOptions()))
	assert.Equal(t, []*domain.Rule{first, second}, h.world.runs())

	require.NoError(t, h.app.Run(context.Background(), nil, runOptions()))
	assert.Len(t, h.world.runs(), 2)
}

func TestApp_Run_CommandChangeRerunsOnlyThatRule(t *testing.T) {
	h := newHarness(t)
	wf, first, _ := chain(t)
	h.world.touch("/w/a", "/w/b", "/w/c")
	h.world.records[first.CacheKey()] = first.Script()

	changed := domain.NewRule(domain.NewArtifacts([]string{"/w/c"}), domain.NewArtifacts([]string{"/w/b"}), "cat $INPUT0 > $OUTPUT0")
	wf = workflow(t, first, changed)
	h.expectLoad(wf)

	h.renderer.EXPECT().RenderPlan([]*domain.Rule{changed})

	require.NoError(t, h.app.Run(context.Background(), nil, runOptions()))
	assert.Equal(t, []*domain.Rule{changed}, h.world.runs())
}

func TestApp_Run_Targets(t *testing.T) {
	tests := []struct {
		name  string
		exprs []string
		want  func(first, second *domain.Rule) []*domain.Rule
	}{
		{
			name:  "Upstream",
			exprs: []string{"c"},
			want:  func(first, second *domain.Rule) []*domain.Rule { return []*domain.Rule{first, second} },
		},
		{
			name:  "Exact",
			exprs: []string{"=c"},
			want:  func(_, second *domain.Rule) []*domain.Rule { return []*domain.Rule{second} },
		},
		{
			name:  "Downstream",
			exprs: []string{"^/w/b"},
			want:  func(_, second *domain.Rule) []*domain.Rule { return []*domain.Rule{second} },
		},
		{
			name:  "Union in declaration order",
			exprs: []string{"=c", "=b"},
			want:  func(first, second *domain.Rule) []*domain.Rule { return []*domain.Rule{first, second} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			wf, first, second := chain(t)
			h.expectLoad(wf)
			h.world.touch("/w/a")

			want := tt.want(first, second)
			h.renderer.EXPECT().RenderPlan(want)

			require.NoError(t, h.app.Run(context.Background(), tt.exprs, runOptions()))
			assert.Equal(t, want, h.world.runs())
		})
	}
}

func TestApp_Run_ForceSelectsFreshRules(t *testing.T) {
	h := newHarness(t)
	wf, first, second := chain(t)
	h.expectLoad(wf)
	h.world.touch("/w/a", "/w/b", "/w/c")
	h.world.records[first.CacheKey()] = first.Script()
	h.world.records[second.CacheKey()] = second.Script()

	h.renderer.EXPECT().RenderPlan([]*domain.Rule{second})

	opts := runOptions()
	opts.Force = true
	require.NoError(t, h.app.Run(context.Background(), []string{"=c"}, opts))
}

func TestApp_Run_InvalidTarget(t *testing.T) {
	h := newHarness(t)
	wf, _, _ := chain(t)
	h.expectLoad(wf)

	err := h.app.Run(context.Background(), []string{"+"}, runOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "couldn't parse target expression")
	assert.Empty(t, h.world.runs())
}

func TestApp_Run_MissingInput(t *testing.T) {
	h := newHarness(t)
	wf, _, _ := chain(t)
	h.expectLoad(wf)

	err := h.app.Run(context.Background(), nil, runOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can't find input file")
}

func TestApp_Run_ExplicitFile(t *testing.T) {
	h := newHarness(t)
	wf, _, _ := chain(t)
	h.world.touch("/w/a", "/w/b", "/w/c")

	h.loader.EXPECT().Load("/w/flows/Snakefile.hcl").Return(wf, nil)
	h.renderer.EXPECT().RenderPlan(gomock.Any())

	opts := runOptions()
	opts.File = "flows/Snakefile.hcl"
	require.NoError(t, h.app.Run(context.Background(), nil, opts))
}

func TestApp_Run_LoadError(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Discover(root).Return("", domain.ErrWorkflowNotFound)

	err := h.app.Run(context.Background(), nil, runOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrWorkflowNotFound.Error())
}

func TestApp_Run_OutOfOrder(t *testing.T) {
	consumer := newRule([]string{"/w/c"}, []string{"/w/b"})
	producer := newRule([]string{"/w/b"}, []string{"/w/a"})

	t.Run("Warns by default", func(t *testing.T) {
		h := newHarness(t)
		h.expectLoad(workflow(t, consumer, producer))
		h.world.touch("/w/a")

		h.logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
			assert.Contains(t, msg, "rule declared before the producer of its input")
		})
		h.renderer.EXPECT().RenderPlan(gomock.Any())

		require.NoError(t, h.app.Run(context.Background(), nil, runOptions()))
	})

	t.Run("Rejected when strict", func(t *testing.T) {
		h := newHarness(t)
		h.expectLoad(workflow(t, consumer, producer))

		opts := runOptions()
		opts.StrictOrder = true
		err := h.app.Run(context.Background(), nil, opts)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rule declared before the producer of its input")
		assert.Empty(t, h.world.runs())
	})
}

func TestApp_Run_Confirmation(t *testing.T) {
	t.Run("Accepted", func(t *testing.T) {
		h := newHarness(t)
		wf, _, _ := chain(t)
		h.expectLoad(wf)
		h.world.touch("/w/a")

		h.renderer.EXPECT().RenderPlan(gomock.Any())
		h.prompter.EXPECT().Interactive().Return(true)
		h.prompter.EXPECT().Confirm("Confirm?").Return(true, nil)

		opts := runOptions()
		opts.Yes = false
		require.NoError(t, h.app.Run(context.Background(), nil, opts))
		assert.Len(t, h.world.runs(), 2)
	})

	t.Run("Declined", func(t *testing.T) {
		h := newHarness(t)
		wf, _, _ := chain(t)
		h.expectLoad(wf)
		h.world.touch("/w/a")

		h.renderer.EXPECT().RenderPlan(gomock.Any())
		h.prompter.EXPECT().Interactive().Return(true)
		h.prompter.EXPECT().Confirm("Confirm?").Return(false, nil)
		h.renderer.EXPECT().Message("Exiting...")

		opts := runOptions()
		opts.Yes = false
		err := h.app.Run(context.Background(), nil, opts)
		require.ErrorIs(t, err, domain.ErrPlanDeclined)
		assert.Empty(t, h.world.runs())
	})

	t.Run("Not interactive", func(t *testing.T) {
		h := newHarness(t)
		wf, _, _ := chain(t)
		h.expectLoad(wf)
		h.world.touch("/w/a")

		h.renderer.EXPECT().RenderPlan(gomock.Any())
		h.prompter.EXPECT().Interactive().Return(false)

		opts := runOptions()
		opts.Yes = false
		err := h.app.Run(context.Background(), nil, opts)
		require.ErrorIs(t, err, domain.ErrConfirmationRequired)
		assert.Empty(t, h.world.runs())
	})
}

func TestApp_Run_Failure(t *testing.T) {
	setup := func(t *testing.T) (*harness, *domain.Rule) {
		t.Helper()
		h := newHarness(t)
		wf, first, _ := chain(t)
		h.expectLoad(wf)
		h.world.touch("/w/a")
		h.world.fail[first] = 2

		h.renderer.EXPECT().RenderPlan(gomock.Any())
		h.renderer.EXPECT().RenderFailure(gomock.Any()).Do(func(err *domain.ExecutionError) {
			assert.Same(t, first, err.Rule)
			assert.Equal(t, "boom", string(err.Result.Stderr))
		})
		return h, first
	}

	assertHalted := func(t *testing.T, h *harness, first *domain.Rule, err error) {
		t.Helper()
		require.ErrorIs(t, err, domain.ErrBuildExecutionFailed)
		require.ErrorIs(t, err, domain.ErrCommandFailed)
		var execErr *domain.ExecutionError
		require.ErrorAs(t, err, &execErr)
		assert.Equal(t, 2, execErr.Result.ExitCode)
		assert.Equal(t, []*domain.Rule{first}, h.world.runs())
		assert.Equal(t, first.Script(), h.world.records[first.CacheKey()])
	}

	t.Run("Always removes outputs", func(t *testing.T) {
		h, first := setup(t)
		h.remover.EXPECT().Remove([]string{"/w/b"}).Return([]string{"/w/b"}, nil)
		h.renderer.EXPECT().Message("Removing... /w/b")

		opts := runOptions()
		opts.CleanOnFailure = app.CleanAlways
		err := h.app.Run(context.Background(), nil, opts)
		assertHalted(t, h, first, err)
	})

	t.Run("Never keeps outputs", func(t *testing.T) {
		h, first := setup(t)

		opts := runOptions()
		opts.CleanOnFailure = app.CleanNever
		err := h.app.Run(context.Background(), nil, opts)
		assertHalted(t, h, first, err)
	})

	t.Run("Ask and accept", func(t *testing.T) {
		h, first := setup(t)
		h.prompter.EXPECT().Interactive().Return(true)
		h.prompter.EXPECT().Confirm("Erase output files from step that errored?").Return(true, nil)
		h.remover.EXPECT().Remove([]string{"/w/b"}).Return(nil, nil)

		err := h.app.Run(context.Background(), nil, runOptions())
		assertHalted(t, h, first, err)
	})

	t.Run("Ask and decline", func(t *testing.T) {
		h, first := setup(t)
		h.prompter.EXPECT().Interactive().Return(true)
		h.prompter.EXPECT().Confirm("Erase output files from step that errored?").Return(false, nil)

		err := h.app.Run(context.Background(), nil, runOptions())
		assertHalted(t, h, first, err)
	})

	t.Run("Ask without a terminal", func(t *testing.T) {
		h, first := setup(t)
		h.prompter.EXPECT().Interactive().Return(false)
		h.logger.EXPECT().Warn(gomock.Any())

		err := h.app.Run(context.Background(), nil, runOptions())
		assertHalted(t, h, first, err)
	})

	t.Run("Removal error is reported", func(t *testing.T) {
		h, first := setup(t)
		removeErr := errors.New("permission denied")
		h.remover.EXPECT().Remove([]string{"/w/b"}).Return(nil, removeErr)

		opts := runOptions()
		opts.CleanOnFailure = app.CleanAlways
		err := h.app.Run(context.Background(), nil, opts)
		assertHalted(t, h, first, err)
		require.ErrorIs(t, err, removeErr)
	})
}

func TestApp_List(t *testing.T) {
	h := newHarness(t)
	wf, first, second := chain(t)
	h.expectLoad(wf)

	h.renderer.EXPECT().RenderRules([]*domain.Rule{first, second})

	require.NoError(t, h.app.List(context.Background(), app.Scope{Dir: root}))
}

func TestParseCleanPolicy(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want app.CleanPolicy
	}{
		{"ask", app.CleanAsk},
		{"", app.CleanAsk},
		{"ALWAYS", app.CleanAlways},
		{"never", app.CleanNever},
	} {
		got, err := app.ParseCleanPolicy(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		if tt.in != "" {
			assert.Equal(t, tt.want.String(), got.String())
		}
	}

	_, err := app.ParseCleanPolicy("sometimes")
	require.Error(t, err)
}
