package ports

import (
	"go.trai.ch/snake/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of a run as a set of vertices, one per rule.
type Telemetry interface {
	// Record starts a vertex named name.
	Record(name string) Vertex
	// Close flushes the recording.
	Close() error
}

// Vertex is the record of one unit of work.
type Vertex interface {
	// Log records a message against the vertex.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex finished, failed if err is not nil.
	Complete(err error)
}
