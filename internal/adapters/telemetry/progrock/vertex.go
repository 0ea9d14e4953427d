package progrock

import (
	"github.com/vito/progrock"
	"go.trai.ch/snake/internal/core/domain"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Log records msg as a progrock message labelled with this vertex.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	label := progrock.WithMessageLabels(&progrock.Label{Name: vertexLabel, Value: v.vertex.Vertex.Id})
	switch {
	case level >= domain.LogLevelError:
		v.vertex.Recorder.Error(msg, label)
	case level >= domain.LogLevelWarn:
		v.vertex.Recorder.Warn(msg, label)
	default:
		v.vertex.Recorder.Debug(msg, label)
	}
}

// Complete marks the vertex finished, failed if err is not nil.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}
