package pm

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/tscheck/tscheck/internal/adapters/logger"
	"github.com/tscheck/tscheck/internal/core/ports"
)

// NodeID is the unique identifier for the package manager detector Graft node.
const NodeID graft.ID = "adapter.pm_detector"

func init() {
	graft.Register(graft.Node[ports.CompilerLocator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CompilerLocator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDetector(log), nil
		},
	})
}
