package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tscheck/tscheck/internal/core/domain"
)

// sourceExtensions are probed in order when a specifier carries no extension.
// Declaration files come after their source counterparts, matching compiler
// preference.
var sourceExtensions = []string{".ts", ".tsx", ".mts", ".cts", ".d.ts", ".d.mts", ".d.cts"}

// emittedToSource maps emitted-JS extensions, which ESM-style TypeScript
// imports are written with, to the source extensions to probe instead.
var emittedToSource = map[string][]string{
	".js":  {".ts", ".tsx", ".d.ts"},
	".jsx": {".tsx", ".d.ts"},
	".mjs": {".mts", ".d.mts"},
	".cjs": {".cts", ".d.cts"},
}

// Resolver maps module specifiers to files on disk using the configured
// module resolution conventions: extension probing, index fallback, and the
// effective config's path mappings. External package imports resolve to
// nothing; the compiler handles those itself.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the on-disk file for a specifier found in a file under
// fromDir, or ok=false when the specifier does not resolve to a project file.
func (r *Resolver) Resolve(spec, fromDir string, cfg *domain.EffectiveConfig) (string, bool) {
	if spec == "" {
		return "", false
	}

	if strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../") || filepath.IsAbs(spec) {
		base := spec
		if !filepath.IsAbs(base) {
			base = filepath.Join(fromDir, filepath.FromSlash(spec))
		}
		return probeModulePath(base)
	}

	// Bare specifier: only resolvable through path mappings.
	for _, candidate := range expandPathMappings(spec, cfg) {
		if path, ok := probeModulePath(candidate); ok {
			return path, true
		}
	}
	return "", false
}

// Companions returns declaration and generated-type siblings of a resolved
// file (x.d.ts, x.gen.ts next to x.ts) that exist on disk. These are pulled
// in because the compiler picks them up alongside the module.
func (r *Resolver) Companions(path string) []string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	if strings.HasSuffix(stem, ".d") || strings.HasSuffix(stem, ".gen") {
		return nil
	}

	var companions []string
	for _, suffix := range []string{".d.ts", ".gen.ts"} {
		candidate := stem + suffix
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			companions = append(companions, candidate)
		}
	}
	return companions
}

// expandPathMappings substitutes spec through the config's paths table.
// A pattern matches exactly, or via its single "*" wildcard; substitution
// patterns receive the wildcard text.
func expandPathMappings(spec string, cfg *domain.EffectiveConfig) []string {
	var candidates []string
	for pattern, subs := range cfg.Paths {
		star := strings.IndexByte(pattern, '*')
		if star < 0 {
			if spec == pattern {
				candidates = append(candidates, subs...)
			}
			continue
		}

		prefix, suffix := pattern[:star], pattern[star+1:]
		if !strings.HasPrefix(spec, prefix) || !strings.HasSuffix(spec, suffix) {
			continue
		}
		matched := spec[len(prefix) : len(spec)-len(suffix)]
		for _, sub := range subs {
			candidates = append(candidates, strings.Replace(sub, "*", matched, 1))
		}
	}
	return candidates
}

// probeModulePath tries the resolution conventions for one base path:
// the path as-is when it already names a source file, emitted-extension
// rewrites, extension probing, then the index-file fallback for directories.
func probeModulePath(base string) (string, bool) {
	base = filepath.Clean(base)

	if hasSourceExtension(base) {
		if fileExists(base) {
			return base, true
		}
		return "", false
	}

	if alternates, ok := emittedToSource[filepath.Ext(base)]; ok {
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		for _, ext := range alternates {
			if fileExists(stem + ext) {
				return stem + ext, true
			}
		}
		return "", false
	}

	for _, ext := range sourceExtensions {
		if fileExists(base + ext) {
			return base + ext, true
		}
	}

	if info, err := os.Stat(base); err == nil && info.IsDir() {
		for _, ext := range sourceExtensions {
			candidate := filepath.Join(base, "index"+ext)
			if fileExists(candidate) {
				return candidate, true
			}
		}
	}
	return "", false
}

func hasSourceExtension(path string) bool {
	for _, ext := range sourceExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
