package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/snake/internal/core/ports"
)

// NodeID is the unique identifier for the command cache Graft node.
const NodeID graft.ID = "adapter.command_cache"

func init() {
	graft.Register(graft.Node[ports.CommandCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CommandCache, error) {
			return NewStore(), nil
		},
	})
}
