// Package app implements the application layer for tscheck.
package app

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tscheck/tscheck/internal/core/domain"
	"github.com/tscheck/tscheck/internal/core/ports"
	"github.com/tscheck/tscheck/internal/engine/discovery"
	"github.com/tscheck/tscheck/internal/engine/grouper"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	grouper     *grouper.Grouper
	discoverer  ports.DependencyDiscoverer
	synthesizer ports.ConfigSynthesizer
	compiler    ports.CompilerLocator
	runner      ports.CompilerRunner
	cache       ports.ArtifactCache
	tracer      ports.Tracer
	logger      ports.Logger
}

// New creates a new App instance.
func New(
	grp *grouper.Grouper,
	disc *discovery.Engine,
	synth ports.ConfigSynthesizer,
	compiler ports.CompilerLocator,
	runner ports.CompilerRunner,
	cache ports.ArtifactCache,
	tracer ports.Tracer,
	logger ports.Logger,
) *App {
	return &App{
		grouper:     grp,
		discoverer:  disc,
		synthesizer: synth,
		compiler:    compiler,
		runner:      runner,
		cache:       cache,
		tracer:      tracer,
		logger:      logger,
	}
}

// Check type-checks the given files against their nearest project
// configurations. Files are grouped by effective config, each group is
// expanded and checked independently, and failures in one group do not stop
// the others.
func (a *App) Check(ctx context.Context, files []string, opts domain.CheckOptions) error {
	groups, err := a.grouper.Group(files, opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to group input files")
	}

	a.logger.Debug(fmt.Sprintf("grouped %d files into %d projects", len(files), len(groups)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	// Every group runs to completion so diagnostics from one project do not
	// mask the others.
	results := make([]error, len(groups))
	for i, group := range groups {
		g.Go(func() error {
			results[i] = a.checkGroup(gctx, group, opts)
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(results...)
}

func (a *App) checkGroup(ctx context.Context, group *domain.FileGroup, opts domain.CheckOptions) (err error) {
	ctx, span := a.tracer.Start(ctx, group.Config.Origin)
	defer func() { span.End(err) }()

	if err = a.discoverer.Expand(ctx, group, opts.Limits(), opts.Recursive); err != nil {
		return zerr.With(zerr.Wrap(err, "dependency discovery failed"), "config", group.Config.Origin)
	}

	synth, err := a.synthesizer.Synthesize(ctx, group, opts)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "config synthesis failed"), "config", group.Config.Origin)
	}
	if synth.Cleanup != nil {
		defer func() {
			if cerr := synth.Cleanup(); cerr != nil {
				a.logger.Warn("failed to remove synthesized config: " + cerr.Error())
			}
		}()
	}
	if synth.Cached {
		span.Cached()
	}

	cmd, err := a.compiler.Locate(group.Config.Dir())
	if err != nil {
		return zerr.With(zerr.Wrap(err, "compiler lookup failed"), "config", group.Config.Origin)
	}

	a.logger.Info(fmt.Sprintf("checking %d files against %s", len(synth.Files), group.Config.Origin))
	return a.runner.Run(ctx, cmd, synth.Path)
}

// Clean removes the artifact cache.
func (a *App) Clean() error {
	dir := a.cache.Dir()
	if err := a.cache.Clean(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to clean cache"), "dir", dir)
	}
	a.logger.Info("removed cache directory " + dir)
	return nil
}
