package shell_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/snake/internal/adapters/shell"
	"go.trai.ch/snake/internal/core/domain"
	"go.trai.ch/snake/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func workflowIn(t *testing.T, rules ...*domain.Rule) *domain.Workflow {
	t.Helper()
	reg := domain.NewRegistry()
	for _, r := range rules {
		require.NoError(t, reg.Register(r))
	}
	return domain.NewWorkflow(filepath.Join(t.TempDir(), "Snakefile.yaml"), reg)
}

func newRule(outputs, inputs []string, cmd string) *domain.Rule {
	return domain.NewRule(domain.NewArtifacts(outputs), domain.NewArtifacts(inputs), cmd)
}

func TestExecutor_Execute_Bindings(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out dir", "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("payload\n"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Dir(out), 0o750))

	rule := newRule([]string{out}, []string{in}, `cp "$INPUT0" "$OUTPUT0"`)

	result, err := shell.NewExecutor(mockLogger).Execute(context.Background(), workflowIn(t, rule), rule)
	require.NoError(t, err)
	assert.True(t, result.Succeeded())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "payload\n", string(data))
}

func TestExecutor_Execute_EnvironmentVariables(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	rule := newRule([]string{"/w/b"}, []string{"/w/a"}, `sh -c 'echo "$INPUT0 $OUTPUT0"'`)

	result, err := shell.NewExecutor(mockLogger).Execute(context.Background(), workflowIn(t, rule), rule)
	require.NoError(t, err)
	assert.Equal(t, "/w/a /w/b\n", string(result.Stdout))
}

func TestExecutor_Execute_WorkingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	rule := newRule(nil, nil, "pwd")
	wf := workflowIn(t, rule)

	result, err := shell.NewExecutor(mockLogger).Execute(context.Background(), wf, rule)
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(wf.Root)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(string(bytes.TrimSpace(result.Stdout)))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExecutor_Execute_NonZeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	rule := newRule([]string{"/w/b"}, nil, "echo oops >&2; exit 3")

	result, err := shell.NewExecutor(mockLogger).Execute(context.Background(), workflowIn(t, rule), rule)
	require.NoError(t, err)
	assert.False(t, result.Succeeded())
	assert.Equal(t, 3, result.ExitCode)
	assert.Equal(t, "oops\n", string(result.Stderr))
}

func TestExecutor_Execute_MultiLineOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		mockLogger.EXPECT().Debug("line1"),
		mockLogger.EXPECT().Debug("line2"),
	)

	rule := newRule(nil, nil, "echo line1; echo line2")

	_, err := shell.NewExecutor(mockLogger).Execute(context.Background(), workflowIn(t, rule), rule)
	require.NoError(t, err)
}

func TestExecutor_Execute_FragmentedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug("part1part2").Times(1)
	mockLogger.EXPECT().Debug("tail").Times(1)

	rule := newRule(nil, nil, "printf part1; sleep 0.1; echo part2; printf tail")

	_, err := shell.NewExecutor(mockLogger).Execute(context.Background(), workflowIn(t, rule), rule)
	require.NoError(t, err)
}

func TestExecutor_Execute_CapturesBothStreams(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	var mu sync.Mutex
	var logged []string
	mockLogger.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		mu.Lock()
		defer mu.Unlock()
		logged = append(logged, msg)
	}).Times(2)

	rule := newRule(nil, nil, "echo hello to stdout; echo hello to stderr >&2")

	result, err := shell.NewExecutor(mockLogger).Execute(context.Background(), workflowIn(t, rule), rule)
	require.NoError(t, err)

	assert.Equal(t, "hello to stdout\n", string(result.Stdout))
	assert.Equal(t, "hello to stderr\n", string(result.Stderr))
	assert.ElementsMatch(t, []string{"hello to stdout", "hello to stderr"}, logged)
}

func TestExecutor_Execute_ShellNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	rule := newRule(nil, nil, "true")
	executor := shell.NewExecutorWithShell(mockLogger, filepath.Join(t.TempDir(), "no-such-shell"))

	result, err := executor.Execute(context.Background(), workflowIn(t, rule), rule)
	require.Error(t, err)
	assert.Equal(t, -1, result.ExitCode)
}

func TestExecutor_Execute_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	rule := newRule(nil, nil, "sleep 10")
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := shell.NewExecutor(mockLogger).Execute(ctx, workflowIn(t, rule), rule)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestResolveEnvironment(t *testing.T) {
	env := shell.ResolveEnvironment(
		[]string{"PATH=/usr/bin", "INPUT0=stale", "HOME=/home/u"},
		[]string{"INPUT0=/w/a", "OUTPUT0=/w/b"},
	)
	assert.Equal(t, []string{"HOME=/home/u", "INPUT0=/w/a", "OUTPUT0=/w/b", "PATH=/usr/bin"}, env)
}
