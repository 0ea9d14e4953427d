package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/snake/internal/core/ports"
)

const (
	// InspectorNodeID is the unique identifier for the file inspector Graft node.
	InspectorNodeID graft.ID = "adapter.fs.inspector"
	// CanonicalizerNodeID is the unique identifier for the path canonicalizer Graft node.
	CanonicalizerNodeID graft.ID = "adapter.fs.canonicalizer"
	// RemoverNodeID is the unique identifier for the output remover Graft node.
	RemoverNodeID graft.ID = "adapter.fs.remover"
)

func init() {
	graft.Register(graft.Node[ports.FileInspector]{
		ID:        InspectorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileInspector, error) {
			return NewInspector(), nil
		},
	})

	graft.Register(graft.Node[ports.PathCanonicalizer]{
		ID:        CanonicalizerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PathCanonicalizer, error) {
			return NewCanonicalizer(), nil
		},
	})

	graft.Register(graft.Node[ports.OutputRemover]{
		ID:        RemoverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OutputRemover, error) {
			return NewRemover(), nil
		},
	})
}
