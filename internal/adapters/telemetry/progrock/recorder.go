// Package progrock records rule runs as vertices on a progrock recording.
package progrock

import (
	"fmt"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/snake/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on top of a progrock recorder.
type Recorder struct {
	rec *progrock.Recorder
	seq atomic.Uint64
}

// New creates a new Recorder writing to a Ledger that reports to logger.
func New(logger ports.Logger) *Recorder {
	return NewRecorder(NewLedger(logger))
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{rec: progrock.NewRecorder(w)}
}

// Record starts a vertex named after the rule. Every call gets its own digest, so a
// rule rebuilt in watch mode shows up as a fresh vertex.
func (r *Recorder) Record(name string) ports.Vertex {
	d := VertexDigest(name, r.seq.Add(1))
	return &Vertex{vertex: r.rec.Vertex(d, name)}
}

// Close closes the underlying writer.
func (r *Recorder) Close() error {
	return r.rec.Close()
}

// VertexDigest identifies the seq-th vertex recorded for name.
func VertexDigest(name string, seq uint64) digest.Digest {
	return digest.FromString(fmt.Sprintf("%s#%d", name, seq))
}
