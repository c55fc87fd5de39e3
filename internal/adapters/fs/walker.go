package fs

import (
	"errors"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tscheck/tscheck/internal/core/domain"
	"go.trai.ch/zerr"
)

// skipDirs are never descended into during ambient scanning.
var skipDirs = map[string]bool{
	domain.NodeModulesDirName: true,
	".git":                    true,
	".jj":                     true,
	"bower_components":        true,
	"jspm_packages":           true,
}

// ambientSuffixes mark files that affect type checking globally without being
// imported: ambient declarations and generated type files.
var ambientSuffixes = []string{".d.ts", ".d.mts", ".d.cts", ".gen.ts"}

// Walker scans a project for ambient declaration files matched by the
// effective config's include patterns.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// AmbientFiles returns the sorted set of ambient declaration and generated
// type files matching cfg's include globs, minus its exclude globs. When the
// config declares neither include nor files, the compiler default of
// including everything under the config directory applies.
func (w *Walker) AmbientFiles(cfg *domain.EffectiveConfig) ([]string, error) {
	includes := cfg.Include
	if len(includes) == 0 && len(cfg.Files) == 0 {
		includes = []string{filepath.Join(cfg.Dir(), "**", "*")}
	}

	found := make([]string, 0)
	for _, pattern := range includes {
		matches, err := w.scanPattern(pattern, cfg.Exclude)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if !slices.Contains(found, m) {
				found = append(found, m)
			}
		}
	}

	slices.Sort(found)
	return found, nil
}

// scanPattern walks the non-wildcard base of one include pattern, collecting
// ambient files that match it. A pattern with no wildcard naming a directory
// includes everything beneath it.
func (w *Walker) scanPattern(pattern string, excludes []string) ([]string, error) {
	base, rest := splitPatternBase(pattern)

	var matches []string
	walkErr := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// A missing include root is not an error; the compiler ignores it too.
			if errors.Is(err, fs.ErrNotExist) {
				return filepath.SkipAll
			}
			return zerr.With(zerr.Wrap(err, "failed to enumerate directory"), "path", path)
		}

		if d.IsDir() {
			if skipDirs[d.Name()] && path != base {
				return filepath.SkipDir
			}
			if matchesAny(excludes, path) {
				return filepath.SkipDir
			}
			return nil
		}

		if !isAmbientFile(path) || matchesAny(excludes, path) {
			return nil
		}

		rel, relErr := filepath.Rel(base, path)
		if relErr != nil {
			return nil
		}
		if rest == "" || matchGlob(rest, rel) {
			matches = append(matches, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return matches, nil
}

// splitPatternBase splits an absolute glob pattern into its literal directory
// prefix and the remaining pattern. A wildcard-free pattern is treated as a
// directory containing everything beneath it.
func splitPatternBase(pattern string) (base, rest string) {
	segments := strings.Split(pattern, string(filepath.Separator))
	for i, seg := range segments {
		if strings.ContainsAny(seg, "*?[") {
			return strings.Join(segments[:i], string(filepath.Separator)), strings.Join(segments[i:], string(filepath.Separator))
		}
	}
	return pattern, ""
}

func isAmbientFile(path string) bool {
	for _, suffix := range ambientSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

func matchesAny(patterns []string, path string) bool {
	for _, p := range patterns {
		base, rest := splitPatternBase(p)
		if rest == "" {
			if path == base || strings.HasPrefix(path, base+string(filepath.Separator)) {
				return true
			}
			continue
		}
		rel, err := filepath.Rel(base, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			continue
		}
		if matchGlob(rest, rel) {
			return true
		}
	}
	return false
}

// matchGlob matches a relative path against a relative glob pattern where
// "**" spans any number of path segments and other segments match with
// filepath.Match semantics. A trailing "**/*" style pattern therefore matches
// files at any depth.
func matchGlob(pattern, path string) bool {
	return matchSegments(
		strings.Split(pattern, string(filepath.Separator)),
		strings.Split(path, string(filepath.Separator)),
	)
}

func matchSegments(pattern, path []string) bool {
	if len(pattern) == 0 {
		return len(path) == 0
	}

	if pattern[0] == "**" {
		// "**" matches zero or more leading segments.
		for skip := 0; skip <= len(path); skip++ {
			if matchSegments(pattern[1:], path[skip:]) {
				return true
			}
		}
		return false
	}

	if len(path) == 0 {
		return false
	}
	if ok, err := filepath.Match(pattern[0], path[0]); err != nil || !ok {
		return false
	}
	return matchSegments(pattern[1:], path[1:])
}
