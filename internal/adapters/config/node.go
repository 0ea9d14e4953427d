package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/snake/internal/adapters/fs"     //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/snake/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/snake/internal/core/ports"
)

// NodeID is the unique identifier for the workflow loader Graft node.
const NodeID graft.ID = "adapter.workflow_loader"

func init() {
	graft.Register(graft.Node[ports.WorkflowLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.CanonicalizerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.WorkflowLoader, error) {
			canonicalizer, err := graft.Dep[ports.PathCanonicalizer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(canonicalizer, log), nil
		},
	})
}
