// Package linear renders plans and rule progress as plain chronological lines.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/snake/internal/core/domain"
	"go.trai.ch/snake/internal/core/ports"
	"go.trai.ch/snake/internal/ui/output"
	"go.trai.ch/snake/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer. Plans and progress go to stdout; failures go
// to stderr.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	out    *termenv.Output
	errOut *termenv.Output

	mu sync.Mutex
}

// NewRenderer creates a new Renderer. Nil writers default to the process streams.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		out:    output.New(stdout),
		errOut: output.New(stderr),
	}
}

// RenderRules prints every rule as a numbered line.
func (r *Renderer) RenderRules(rules []*domain.Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.numberedLocked(rules)
}

// RenderPlan prints the rules that will run, in order.
func (r *Renderer) RenderPlan(rules []*domain.Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintln(r.stdout, "The following steps will be run, in order:")
	r.numberedLocked(rules)
}

// OnRuleStart announces a rule. When verbose, the full script is echoed below it.
func (r *Renderer) OnRuleStart(rule *domain.Rule, verbose bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	label := r.out.String("Running:").Foreground(r.out.Color(string(style.Accent))).Bold().String()
	_, _ = fmt.Fprintf(r.stdout, "%s %s\n", label, rule)

	if verbose {
		for _, line := range strings.Split(rule.Script(), "\n") {
			_, _ = fmt.Fprintln(r.stdout, r.out.String("    "+line).Faint().String())
		}
	}
}

// OnRuleComplete prints the outcome of a rule.
func (r *Renderer) OnRuleComplete(rule *domain.Rule, status domain.RunStatus, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	elapsed = elapsed.Round(time.Millisecond)
	if status == domain.RunStatusFailed {
		symbol := r.out.String(style.Cross).Foreground(r.out.Color(string(style.Red))).String()
		_, _ = fmt.Fprintf(r.stdout, "%s %s failed after %v\n", symbol, rule, elapsed)
		return
	}
	symbol := r.out.String(style.Check).Foreground(r.out.Color(string(style.Green))).String()
	_, _ = fmt.Fprintf(r.stdout, "%s %s done in %v\n", symbol, rule, elapsed)
}

// RenderFailure prints the failing script and everything it wrote to stderr.
func (r *Renderer) RenderFailure(err *domain.ExecutionError) {
	r.mu.Lock()
	defer r.mu.Unlock()

	header := r.errOut.String("ERROR in command:").Foreground(r.errOut.Color(string(style.Red))).Bold().String()
	_, _ = fmt.Fprintln(r.stderr, header)
	_, _ = fmt.Fprintln(r.stderr, err.Rule.Script())

	if err.Cause != nil {
		_, _ = fmt.Fprintf(r.stderr, "%s %v\n", style.Arrow, err.Cause)
	} else {
		_, _ = fmt.Fprintf(r.stderr, "%s exit status %d\n", style.Arrow, err.Result.ExitCode)
	}

	if stderr := strings.TrimRight(string(err.Result.Stderr), "\n"); stderr != "" {
		_, _ = fmt.Fprintln(r.stderr, r.errOut.String("stderr:").Faint().String())
		_, _ = fmt.Fprintln(r.stderr, stderr)
	}
}

// Message prints msg on its own line.
func (r *Renderer) Message(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintln(r.stdout, msg)
}

func (r *Renderer) numberedLocked(rules []*domain.Rule) {
	for i, rule := range rules {
		_, _ = fmt.Fprintf(r.stdout, "  %d: %s\n", i+1, rule)
	}
}
