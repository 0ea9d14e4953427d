package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/snake/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/snake/internal/adapters/linear"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/snake/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/snake/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/snake/internal/core/ports"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			cas.NodeID,
			progrock.NodeID,
			linear.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := graft.Dep[ports.CommandCache](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}

			return NewScheduler(executor, cache, telemetry, renderer), nil
		},
	})
}
