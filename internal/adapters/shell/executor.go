// Package shell provides the shell executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"go.trai.ch/snake/internal/core/domain"
	"go.trai.ch/snake/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultShell interprets rule scripts.
const DefaultShell = "sh"

// waitDelay bounds how long a cancelled command may keep its output pipes open
// through orphaned children.
const waitDelay = 2 * time.Second

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor by handing the rule script to a POSIX shell.
type Executor struct {
	logger ports.Logger
	shell  string
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
		shell:  DefaultShell,
	}
}

// Execute runs `sh -c <script>` from the workflow root and waits for it to exit.
//
// The positional INPUTn/OUTPUTn variables are exported on top of the process
// environment. Output is captured in the result and streamed line by line to the
// debug log.
func (e *Executor) Execute(ctx context.Context, wf *domain.Workflow, rule *domain.Rule) (domain.CommandResult, error) {
	cmdEnv := resolveEnvironment(os.Environ(), rule.Bindings())

	executable := e.shell
	if !filepath.IsAbs(executable) {
		if lp, err := lookPath(executable, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, "-c", rule.Script()) //nolint:gosec // user provided command
	if len(cmd.Args) > 0 {
		cmd.Args[0] = e.shell
	}
	cmd.Dir = wf.Root
	cmd.Env = cmdEnv
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	stdoutLog, stderrLog := &logWriter{logger: e.logger}, &logWriter{logger: e.logger}
	cmd.Stdout = io.MultiWriter(&stdout, stdoutLog)
	cmd.Stderr = io.MultiWriter(&stderr, stderrLog)

	start := time.Now()
	err := cmd.Run()
	stdoutLog.Flush()
	stderrLog.Flush()

	result := domain.CommandResult{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		Duration: time.Since(start),
	}
	if err == nil {
		return result, nil
	}

	result.ExitCode = -1
	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, ctxErr
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	return result, zerr.With(zerr.Wrap(err, "failed to start command"), "rule", rule.String())
}

// logWriter forwards complete lines to the debug log.
type logWriter struct {
	logger ports.Logger
	mu     sync.Mutex
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logger.Debug(string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush logs a trailing line that was not terminated by a newline.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.logger.Debug(string(w.buf))
		w.buf = nil
	}
}

// resolveEnvironment overlays the rule bindings on the system environment.
// The result is sorted so commands see a stable environment.
func resolveEnvironment(sysEnv, bindings []string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(bindings))
	for _, layer := range [][]string{sysEnv, bindings} {
		for _, entry := range layer {
			if k, v, ok := strings.Cut(entry, "="); ok {
				envMap[k] = v
			}
		}
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
