package synth

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/tscheck/tscheck/internal/adapters/cache" //nolint:depguard // Wired in adapter wiring
	"github.com/tscheck/tscheck/internal/adapters/logger"
	"github.com/tscheck/tscheck/internal/core/ports"
)

// NodeID is the unique identifier for the synthesizer Graft node.
const NodeID graft.ID = "adapter.synthesizer"

func init() {
	graft.Register(graft.Node[ports.ConfigSynthesizer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cache.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigSynthesizer, error) {
			store, err := graft.Dep[ports.ArtifactCache](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(store, log), nil
		},
	})
}
