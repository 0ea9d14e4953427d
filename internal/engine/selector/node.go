package selector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/snake/internal/engine/oracle"
)

// NodeID is the unique identifier for the selector Graft node.
const NodeID graft.ID = "engine.selector"

func init() {
	graft.Register(graft.Node[*Selector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{oracle.NodeID},
		Run: func(ctx context.Context) (*Selector, error) {
			o, err := graft.Dep[*oracle.Oracle](ctx)
			if err != nil {
				return nil, err
			}
			return New(o), nil
		},
	})
}
