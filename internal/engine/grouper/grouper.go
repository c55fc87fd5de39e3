// Package grouper partitions requested files into groups sharing one
// effective configuration.
package grouper

import (
	"path/filepath"

	"github.com/tscheck/tscheck/internal/core/domain"
	"github.com/tscheck/tscheck/internal/core/ports"
	"go.trai.ch/zerr"
)

// Grouper builds file groups using nearest-config-wins semantics.
type Grouper struct {
	locator ports.ConfigLocator
}

// New creates a new Grouper backed by the given locator.
func New(locator ports.ConfigLocator) *Grouper {
	return &Grouper{locator: locator}
}

// Group partitions files by the absolute path of each file's origin config.
// Group order is the first-appearance order of each origin, and inputs keep
// their insertion order inside a group, so output is deterministic.
//
// A file whose config cannot be resolved fails the whole call: dropping
// inputs silently would produce a check that quietly skipped files.
func (g *Grouper) Group(files []string, configOverride string) ([]*domain.FileGroup, error) {
	if len(files) == 0 {
		return nil, domain.ErrNoFilesSpecified
	}

	if configOverride != "" {
		return g.groupUnderOverride(files, configOverride)
	}

	byOrigin := make(map[string]*domain.FileGroup)
	var groups []*domain.FileGroup

	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return nil, zerr.With(zerr.With(domain.ErrFileOutsideProject, "cause", err.Error()), "file", file)
		}

		cfg, err := g.locator.ResolveFile(abs)
		if err != nil {
			return nil, zerr.With(err, "file", abs)
		}

		group, ok := byOrigin[cfg.Origin]
		if !ok {
			group = &domain.FileGroup{Config: cfg}
			byOrigin[cfg.Origin] = group
			groups = append(groups, group)
		}
		group.AddInput(abs)
	}

	return groups, nil
}

// groupUnderOverride puts every file into a single group governed by an
// explicitly chosen config, skipping the upward walk.
func (g *Grouper) groupUnderOverride(files []string, configPath string) ([]*domain.FileGroup, error) {
	cfg, err := g.locator.ResolvePath(configPath)
	if err != nil {
		return nil, err
	}

	group := &domain.FileGroup{Config: cfg}
	for _, file := range files {
		abs, absErr := filepath.Abs(file)
		if absErr != nil {
			return nil, zerr.With(zerr.With(domain.ErrFileOutsideProject, "cause", absErr.Error()), "file", file)
		}
		group.AddInput(abs)
	}
	return []*domain.FileGroup{group}, nil
}
