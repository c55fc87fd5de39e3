// Package domain contains the core domain models for scoped type checking.
package domain

import "path/filepath"

// EffectiveConfig is the flattened result of resolving a tsconfig and its
// extends chain. It is immutable once resolved; the Locator caches one
// instance per origin path for the lifetime of the run.
type EffectiveConfig struct {
	// Origin is the absolute path of the nearest config file, before
	// inheritance resolution.
	Origin string

	// Raw is the unmodified byte content of the origin file. It feeds the
	// cache fingerprint so that any edit to the origin invalidates reuse.
	Raw []byte

	// CompilerOptions is the merged compilerOptions object. Later configs in
	// the extends chain override earlier ones key-by-key; "types" is the one
	// array option that concatenates instead.
	CompilerOptions map[string]any

	// Include, Exclude and Files are the merged glob lists, rewritten to
	// absolute paths anchored at the config file that declared each entry.
	Include []string
	Exclude []string
	Files   []string

	// BaseURL is the absolute resolution base for path mappings, empty when
	// the chain never sets baseUrl.
	BaseURL string

	// Paths maps import patterns (possibly containing a single "*") to lists
	// of substitution patterns, already resolved against BaseURL.
	Paths map[string][]string

	// Composite reports whether the effective config enables project
	// references mode, which implies incremental build info output.
	Composite bool

	// Incremental reports whether incremental compilation is enabled.
	Incremental bool

	// TSBuildInfoFile is the explicitly configured build info path, empty when
	// the project relies on the compiler default.
	TSBuildInfoFile string
}

// Dir returns the directory containing the origin config file.
func (c *EffectiveConfig) Dir() string {
	return filepath.Dir(c.Origin)
}

// HasPathMappings reports whether the config declares any paths aliases.
func (c *EffectiveConfig) HasPathMappings() bool {
	return len(c.Paths) > 0
}
