// Package pm detects the project's package manager and dependency tree.
package pm

import (
	"os"
	"path/filepath"

	"github.com/tscheck/tscheck/internal/core/domain"
	"github.com/tscheck/tscheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CompilerLocator = (*Detector)(nil)

// lockfileCommands maps lockfile names to the command tuple that invokes the
// project-local TypeScript compiler through the matching package manager.
// Order matters: the first lockfile found in a directory wins.
var lockfileCommands = []struct {
	lockfile string
	exe      string
	args     []string
}{
	{"pnpm-lock.yaml", "pnpm", []string{"exec", "tsc"}},
	{"yarn.lock", "yarn", []string{"tsc"}},
	{"bun.lock", "bunx", []string{"tsc"}},
	{"bun.lockb", "bunx", []string{"tsc"}},
	{"package-lock.json", "npx", []string{"tsc"}},
}

// Detector implements ports.CompilerLocator by probing lockfiles upward from
// the project directory.
type Detector struct {
	logger ports.Logger
}

// NewDetector creates a new Detector.
func NewDetector(logger ports.Logger) *Detector {
	return &Detector{logger: logger}
}

// Locate walks upward from startDir until a lockfile identifies the package
// manager. A package.json without any lockfile falls back to npx, so freshly
// cloned projects still work.
func (d *Detector) Locate(startDir string) (ports.CompilerCommand, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return ports.CompilerCommand{}, zerr.With(domain.ErrCompilerNotFound, "cause", err.Error())
	}

	var sawPackageJSON bool
	for dir := abs; ; dir = filepath.Dir(dir) {
		for _, candidate := range lockfileCommands {
			if fileExists(filepath.Join(dir, candidate.lockfile)) {
				d.logger.Debug("detected package manager via " + candidate.lockfile)
				return ports.CompilerCommand{Exe: candidate.exe, Args: candidate.args}, nil
			}
		}
		if fileExists(filepath.Join(dir, "package.json")) {
			sawPackageJSON = true
		}
		if filepath.Dir(dir) == dir {
			break
		}
	}

	if sawPackageJSON {
		return ports.CompilerCommand{Exe: "npx", Args: []string{"tsc"}}, nil
	}
	return ports.CompilerCommand{}, zerr.With(domain.ErrCompilerNotFound, "start_dir", abs)
}

// DepsRoot returns the nearest ancestor of startDir containing a
// node_modules directory, falling back to startDir when none exists.
func (d *Detector) DepsRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", zerr.With(domain.ErrCompilerNotFound, "cause", err.Error())
	}

	for dir := abs; ; dir = filepath.Dir(dir) {
		if info, statErr := os.Stat(filepath.Join(dir, domain.NodeModulesDirName)); statErr == nil && info.IsDir() {
			return dir, nil
		}
		if filepath.Dir(dir) == dir {
			return abs, nil
		}
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
