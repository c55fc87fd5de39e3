package domain

import "path/filepath"

const (
	// ToolName is used for the cache subdirectory and build info naming.
	ToolName = "tscheck"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "tsconfig.json"

	// OptionsFileName is the name of the optional tool options file.
	OptionsFileName = "tscheck.yaml"

	// NodeModulesDirName is the dependency installation tree the cache nests under.
	NodeModulesDirName = "node_modules"

	// CacheParentDirName is the conventional shared cache directory inside
	// node_modules.
	CacheParentDirName = ".cache"

	// CacheIndexFileName is the name of the fingerprint index file.
	CacheIndexFileName = "entries.json"

	// BuildInfoFileName is the redirected incremental build info file for
	// composite origin projects.
	BuildInfoFileName = "tsbuildinfo.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750
)

// CacheDir returns the cache directory under the given dependency root
// (a directory containing node_modules).
func CacheDir(depsRoot string) string {
	return filepath.Join(depsRoot, NodeModulesDirName, CacheParentDirName, ToolName)
}

// BuildInfoPath returns the redirected build info location inside cacheDir
// for the given fingerprint, keeping concurrent groups from sharing one file.
func BuildInfoPath(cacheDir, fingerprint string) string {
	return filepath.Join(cacheDir, fingerprint+"-"+BuildInfoFileName)
}
