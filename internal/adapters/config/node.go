package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/tscheck/tscheck/internal/adapters/logger"
	"github.com/tscheck/tscheck/internal/core/ports"
)

// NodeID is the unique identifier for the config locator Graft node.
const NodeID graft.ID = "adapter.config_locator"

func init() {
	graft.Register(graft.Node[ports.ConfigLocator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLocator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(log), nil
		},
	})
}
