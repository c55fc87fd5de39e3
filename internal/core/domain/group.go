package domain

import "slices"

// FileGroup is a set of requested files sharing one effective configuration.
// Groups are disjoint over inputs: each input belongs to exactly one group,
// chosen by nearest-config-wins.
type FileGroup struct {
	// Config is the effective configuration shared by every file in the group.
	Config *EffectiveConfig

	// Inputs holds the requested absolute file paths in insertion order.
	Inputs []string

	// Discovered holds the expanded dependency set, sorted, populated by the
	// discovery engine. It never contains a path already present in Inputs.
	Discovered []string

	// Notice carries discovery limit information, nil until discovery ran.
	Notice *DiscoveryNotice
}

// AddInput appends a file to the group unless it is already present.
func (g *FileGroup) AddInput(path string) {
	if !slices.Contains(g.Inputs, path) {
		g.Inputs = append(g.Inputs, path)
	}
}

// AllFiles returns the union of inputs and discovered dependencies.
// Inputs keep their insertion order; discovered files follow, sorted.
func (g *FileGroup) AllFiles() []string {
	all := make([]string, 0, len(g.Inputs)+len(g.Discovered))
	all = append(all, g.Inputs...)
	for _, d := range g.Discovered {
		if !slices.Contains(g.Inputs, d) {
			all = append(all, d)
		}
	}
	return all
}

// DiscoveryLimits bounds the dependency traversal.
type DiscoveryLimits struct {
	// MaxDepth is the maximum number of import hops from an input file.
	MaxDepth int
	// MaxFiles is a soft cap on the total size of the expanded set.
	MaxFiles int
}

// DiscoveryNotice reports how far a bounded traversal got. Hitting a limit is
// informational, never an error: the compiler still checks the partial set.
type DiscoveryNotice struct {
	// FilesFound is the total size of the expanded set, inputs included.
	FilesFound int
	// MaxDepthSeen is the deepest import hop that was traversed.
	MaxDepthSeen int
	// LimitHit reports whether MaxFiles stopped the traversal early.
	LimitHit bool
}
