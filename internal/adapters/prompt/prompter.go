// Package prompt asks yes/no questions on the terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.trai.ch/snake/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

var _ ports.Prompter = (*Prompter)(nil)

// Prompter implements ports.Prompter over a reader and a writer.
type Prompter struct {
	mu          sync.Mutex
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// New creates a Prompter on the process's stdin and stdout. It is interactive only
// when stdin is a terminal.
func New() *Prompter {
	return NewPrompter(os.Stdin, os.Stdout, term.IsTerminal(int(os.Stdin.Fd())))
}

// NewPrompter creates a Prompter reading answers from in and writing questions to out.
func NewPrompter(in io.Reader, out io.Writer, interactive bool) *Prompter {
	return &Prompter{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// Interactive reports whether answers can be read from a terminal.
func (p *Prompter) Interactive() bool {
	return p.interactive
}

// Confirm prints question followed by " [y/n]" and reads answers until one is y or n,
// case-insensitively. Reaching the end of input counts as no.
func (p *Prompter) Confirm(question string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, _ = fmt.Fprintf(p.out, "%s [y/n]\n", question)
	for {
		line, err := p.in.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, zerr.Wrap(err, "failed to read answer")
		}
		_, _ = fmt.Fprintln(p.out, "Please input y or n")
	}
}
