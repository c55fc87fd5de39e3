// Package discovery implements bounded transitive dependency discovery for
// file groups.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	adapterfs "github.com/tscheck/tscheck/internal/adapters/fs"
	"github.com/tscheck/tscheck/internal/core/domain"
	"github.com/tscheck/tscheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DependencyDiscoverer = (*Engine)(nil)

// Engine expands file groups by breadth-first traversal of statically scanned
// imports, plus an include-driven scan for ambient declaration files.
//
// The traversal uses an explicit frontier queue and visited set rather than
// recursion, so deep or cyclic import graphs cannot overflow the stack.
type Engine struct {
	scanner  *adapterfs.Scanner
	resolver *adapterfs.Resolver
	walker   *adapterfs.Walker
	logger   ports.Logger
}

// New creates a new discovery Engine.
func New(scanner *adapterfs.Scanner, resolver *adapterfs.Resolver, walker *adapterfs.Walker, logger ports.Logger) *Engine {
	return &Engine{
		scanner:  scanner,
		resolver: resolver,
		walker:   walker,
		logger:   logger,
	}
}

// frontierNode is one queued traversal entry.
type frontierNode struct {
	path  string
	depth int
}

// traversal is the transient per-group state.
type traversal struct {
	visited    map[string]bool
	discovered []string
	total      int
	maxDepth   int
	limitHit   bool
	limits     domain.DiscoveryLimits
}

// add records a newly resolved file, enforcing the soft maxFiles cap.
// It returns false when the file was already known or when the cap stopped
// the traversal.
func (t *traversal) add(path string) bool {
	if t.visited[path] {
		return false
	}
	if t.total >= t.limits.MaxFiles {
		t.limitHit = true
		return false
	}
	t.visited[path] = true
	t.discovered = append(t.discovered, path)
	t.total++
	return true
}

// Expand populates group.Discovered and group.Notice. Re-running on an
// unchanged group and filesystem yields the same expanded set: traversal
// order is input order, scan order and sorted ambient order, with no map
// iteration influencing the result.
func (e *Engine) Expand(ctx context.Context, group *domain.FileGroup, limits domain.DiscoveryLimits, recursive bool) error {
	state := &traversal{
		visited: make(map[string]bool, len(group.Inputs)),
		total:   len(group.Inputs),
		limits:  limits,
	}
	for _, input := range group.Inputs {
		state.visited[input] = true
	}

	if recursive {
		if err := e.traverse(ctx, group, state); err != nil {
			return err
		}
	}

	if !state.limitHit {
		if err := e.scanAmbient(group, state); err != nil {
			return err
		}
	}

	slices.Sort(state.discovered)
	group.Discovered = state.discovered
	group.Notice = &domain.DiscoveryNotice{
		FilesFound:   state.total,
		MaxDepthSeen: state.maxDepth,
		LimitHit:     state.limitHit,
	}

	if state.limitHit {
		e.logger.Warn(fmt.Sprintf(
			"dependency discovery stopped at %d files (max %d, depth reached %d); raise --max-files to widen the check",
			state.total, limits.MaxFiles, state.maxDepth,
		))
	}
	return nil
}

func (e *Engine) traverse(ctx context.Context, group *domain.FileGroup, state *traversal) error {
	queue := make([]frontierNode, 0, len(group.Inputs))
	for _, input := range group.Inputs {
		queue = append(queue, frontierNode{path: input, depth: 0})
	}

	for len(queue) > 0 && !state.limitHit {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "dependency discovery cancelled")
		}

		node := queue[0]
		queue = queue[1:]
		if node.depth > state.maxDepth {
			state.maxDepth = node.depth
		}

		src, err := os.ReadFile(node.path) //nolint:gosec // resolved project file
		if err != nil {
			// A vanished file is a best-effort skip; anything else (e.g.
			// permission denied) is a real filesystem failure.
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return zerr.With(zerr.Wrap(err, "failed to read source file"), "path", node.path)
		}

		fromDir := filepath.Dir(node.path)
		for _, spec := range e.scanner.ScanImports(src) {
			resolved, ok := e.resolver.Resolve(spec, fromDir, group.Config)
			if !ok {
				// Unresolved specifiers (external packages, typos) are the
				// compiler's problem, not ours.
				continue
			}

			if state.add(resolved) && node.depth+1 <= state.limits.MaxDepth {
				queue = append(queue, frontierNode{path: resolved, depth: node.depth + 1})
			}
			if state.limitHit {
				break
			}

			for _, companion := range e.resolver.Companions(resolved) {
				state.add(companion)
				if state.limitHit {
					break
				}
			}
			if state.limitHit {
				break
			}
		}
	}
	return nil
}

// scanAmbient adds declaration and generated-type files matched by the
// config's include globs, irrespective of import reachability.
func (e *Engine) scanAmbient(group *domain.FileGroup, state *traversal) error {
	ambient, err := e.walker.AmbientFiles(group.Config)
	if err != nil {
		return err
	}

	for _, path := range ambient {
		state.add(path)
		if state.limitHit {
			break
		}
	}
	return nil
}
