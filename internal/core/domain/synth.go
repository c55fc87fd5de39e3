package domain

import "time"

// SynthesizedConfig is an on-disk configuration artifact extending an origin
// config with an overridden file set, used to scope one compiler run.
type SynthesizedConfig struct {
	// Path is the absolute location of the written artifact.
	Path string

	// Fingerprint is the content-derived cache key the artifact was stored
	// under, a 16-hex-digit xxhash.
	Fingerprint string

	// Files is the exact file list the artifact scopes the compiler to.
	Files []string

	// Cached reports whether the artifact was reused from the cache rather
	// than written by this invocation.
	Cached bool

	// Cleanup removes the artifact. It is non-nil only for uncached
	// (temporary) artifacts and must be called on every exit path of the
	// invocation that created it.
	Cleanup func() error
}

// CacheEntry maps a fingerprint to a previously synthesized artifact.
type CacheEntry struct {
	Fingerprint  string    `json:"fingerprint"`
	ArtifactPath string    `json:"artifact_path"`
	CreatedAt    time.Time `json:"created_at"`
}
