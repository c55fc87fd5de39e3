package grouper

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/tscheck/tscheck/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"github.com/tscheck/tscheck/internal/core/ports"
)

// NodeID is the unique identifier for the grouper Graft node.
const NodeID graft.ID = "engine.grouper"

func init() {
	graft.Register(graft.Node[*Grouper]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*Grouper, error) {
			locator, err := graft.Dep[ports.ConfigLocator](ctx)
			if err != nil {
				return nil, err
			}
			return New(locator), nil
		},
	})
}
