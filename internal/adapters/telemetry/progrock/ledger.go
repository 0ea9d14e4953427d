package progrock

import (
	"fmt"
	"sync"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/snake/internal/core/ports"
)

// vertexLabel tags messages with the id of the vertex they belong to.
const vertexLabel = "snake.vertex"

var _ progrock.Writer = (*Ledger)(nil)

// Summary is the outcome of a recording session.
type Summary struct {
	Total    int
	Failed   int
	Duration time.Duration
}

type ledgerEntry struct {
	name      string
	started   time.Time
	completed time.Time
	failed    bool
}

// Ledger is a progrock.Writer keeping only the lifecycle of each vertex. Vertex
// messages go to the debug log and log chunks are dropped, so memory stays bounded
// by the number of rules rather than by their output.
type Ledger struct {
	logger ports.Logger

	mu      sync.Mutex
	entries map[string]*ledgerEntry
	order   []string
	closed  bool
}

// NewLedger creates a Ledger reporting to logger.
func NewLedger(logger ports.Logger) *Ledger {
	return &Ledger{
		logger:  logger,
		entries: make(map[string]*ledgerEntry),
	}
}

// WriteStatus folds a status update into the ledger.
func (l *Ledger) WriteStatus(update *progrock.StatusUpdate) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, v := range update.GetVertexes() {
		e, ok := l.entries[v.GetId()]
		if !ok {
			e = &ledgerEntry{}
			l.entries[v.GetId()] = e
			l.order = append(l.order, v.GetId())
		}
		e.name = v.GetName()
		if v.Started != nil {
			e.started = v.GetStarted().AsTime()
		}
		if v.Completed != nil {
			e.completed = v.GetCompleted().AsTime()
		}
		if v.Error != nil || v.GetCanceled() {
			e.failed = true
		}
	}

	for _, m := range update.GetMessages() {
		l.logger.Debug(l.describe(m))
	}
	return nil
}

func (l *Ledger) describe(m *progrock.Message) string {
	for _, label := range m.GetLabels() {
		if label.GetName() != vertexLabel {
			continue
		}
		if e, ok := l.entries[label.GetValue()]; ok {
			return e.name + ": " + m.GetMessage()
		}
	}
	return m.GetMessage()
}

// Summary reports how many vertices were recorded, how many failed or were cancelled,
// and the span from the first start to the last completion.
func (l *Ledger) Summary() Summary {
	l.mu.Lock()
	defer l.mu.Unlock()

	var s Summary
	var first, last time.Time
	for _, id := range l.order {
		e := l.entries[id]
		s.Total++
		if e.failed {
			s.Failed++
		}
		if first.IsZero() || (!e.started.IsZero() && e.started.Before(first)) {
			first = e.started
		}
		if e.completed.After(last) {
			last = e.completed
		}
	}
	if !first.IsZero() && last.After(first) {
		s.Duration = last.Sub(first)
	}
	return s
}

// Close logs the summary once. Recordings without vertices stay silent.
func (l *Ledger) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	l.mu.Unlock()

	s := l.Summary()
	if s.Total > 0 {
		l.logger.Debug(fmt.Sprintf("recorded %d rule(s), %d failed, in %s",
			s.Total, s.Failed, s.Duration.Round(time.Millisecond)))
	}
	return nil
}
