package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/tscheck/tscheck/internal/adapters/cache"     //nolint:depguard // Wired in app layer
	"github.com/tscheck/tscheck/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/tscheck/tscheck/internal/adapters/pm"        //nolint:depguard // Wired in app layer
	"github.com/tscheck/tscheck/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"github.com/tscheck/tscheck/internal/adapters/synth"     //nolint:depguard // Wired in app layer
	"github.com/tscheck/tscheck/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/tscheck/tscheck/internal/core/ports"
	"github.com/tscheck/tscheck/internal/engine/discovery"
	"github.com/tscheck/tscheck/internal/engine/grouper"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the wired application with the collaborators the CLI
// entry point needs direct access to.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			grouper.NodeID,
			discovery.NodeID,
			synth.NodeID,
			pm.NodeID,
			shell.NodeID,
			cache.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	grp, err := graft.Dep[*grouper.Grouper](ctx)
	if err != nil {
		return nil, err
	}

	disc, err := graft.Dep[*discovery.Engine](ctx)
	if err != nil {
		return nil, err
	}

	synthesizer, err := graft.Dep[ports.ConfigSynthesizer](ctx)
	if err != nil {
		return nil, err
	}

	compiler, err := graft.Dep[ports.CompilerLocator](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.CompilerRunner](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ArtifactCache](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(grp, disc, synthesizer, compiler, runner, store, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
	}, nil
}
