package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no tsconfig is discoverable between a
	// file's directory and the filesystem root.
	ErrConfigNotFound = zerr.New("could not find tsconfig.json, pass one explicitly with --project")

	// ErrConfigRead is returned when a config file exists but cannot be read.
	ErrConfigRead = zerr.New("failed to read config file")

	// ErrConfigParse is returned when a config file is not valid JSONC.
	ErrConfigParse = zerr.New("failed to parse config file")

	// ErrConfigExtendsCycle is returned when an extends chain references itself.
	ErrConfigExtendsCycle = zerr.New("cycle in extends chain")

	// ErrExtendsNotFound is returned when an extends reference cannot be resolved.
	ErrExtendsNotFound = zerr.New("could not resolve extends reference")

	// ErrNoFilesSpecified is returned when the check command receives no files.
	ErrNoFilesSpecified = zerr.New("no files specified")

	// ErrFileOutsideProject is returned when an input file cannot be made absolute.
	ErrFileOutsideProject = zerr.New("failed to resolve absolute path of input file")

	// ErrArtifactWrite is returned when a synthesized config cannot be written.
	ErrArtifactWrite = zerr.New("failed to write synthesized config")

	// ErrCacheRead is returned when the cache index cannot be read.
	ErrCacheRead = zerr.New("failed to read cache index")

	// ErrCacheWrite is returned when the cache index or an artifact cannot be
	// persisted. It always propagates to the caller.
	ErrCacheWrite = zerr.New("failed to write cache index")

	// ErrCompilerNotFound is returned when no package manager lockfile or tsc
	// binary can be located for the project.
	ErrCompilerNotFound = zerr.New("could not locate a TypeScript compiler for the project")

	// ErrCheckFailed is returned when the compiler reports diagnostics.
	// It maps to exit code 1 without a stack trace dump.
	ErrCheckFailed = zerr.New("type check failed")

	// ErrCompilerRunFailed is returned when the compiler process itself could
	// not run (missing binary, signal), as opposed to reporting diagnostics.
	ErrCompilerRunFailed = zerr.New("compiler execution failed")
)
