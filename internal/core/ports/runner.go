package ports

import "context"

// CompilerCommand is the executable plus leading arguments that invoke the
// project's TypeScript compiler, as detected from the package manager.
type CompilerCommand struct {
	Exe  string
	Args []string
}

// CompilerLocator detects how to invoke the compiler for a project and where
// its dependency installation tree lives.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CompilerLocator interface {
	// Locate returns the command tuple for the project containing startDir,
	// based on the nearest lockfile.
	Locate(startDir string) (CompilerCommand, error)

	// DepsRoot returns the nearest ancestor of startDir containing a
	// node_modules directory. Falls back to startDir when none exists.
	DepsRoot(startDir string) (string, error)
}

// CompilerRunner executes the compiler against a synthesized config.
type CompilerRunner interface {
	// Run invokes the compiler with --project projectPath, streaming output
	// to the user. It returns domain.ErrCheckFailed when the compiler reports
	// diagnostics and domain.ErrCompilerRunFailed when it could not run.
	Run(ctx context.Context, cmd CompilerCommand, projectPath string) error
}
