package oracle

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/snake/internal/adapters/cas" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/snake/internal/adapters/fs"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/snake/internal/core/ports"
)

// NodeID is the unique identifier for the oracle Graft node.
const NodeID graft.ID = "engine.oracle"

func init() {
	graft.Register(graft.Node[*Oracle]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.InspectorNodeID, cas.NodeID},
		Run: func(ctx context.Context) (*Oracle, error) {
			inspector, err := graft.Dep[ports.FileInspector](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := graft.Dep[ports.CommandCache](ctx)
			if err != nil {
				return nil, err
			}

			return New(inspector, cache), nil
		},
	})
}
