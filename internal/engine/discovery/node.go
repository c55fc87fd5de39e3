package discovery

import (
	"context"

	"github.com/grindlemire/graft"
	adapterfs "github.com/tscheck/tscheck/internal/adapters/fs" //nolint:depguard // Wired in engine wiring
	"github.com/tscheck/tscheck/internal/adapters/logger"       //nolint:depguard // Wired in engine wiring
	"github.com/tscheck/tscheck/internal/core/ports"
)

// NodeID is the unique identifier for the discovery engine Graft node.
const NodeID graft.ID = "engine.discovery"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			adapterfs.ScannerNodeID,
			adapterfs.ResolverNodeID,
			adapterfs.WalkerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			scanner, err := graft.Dep[*adapterfs.Scanner](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[*adapterfs.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			walker, err := graft.Dep[*adapterfs.Walker](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(scanner, resolver, walker, log), nil
		},
	})
}
