package ports

import "github.com/tscheck/tscheck/internal/core/domain"

// ArtifactCache persists fingerprint-keyed cache entries.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ArtifactCache interface {
	// Get retrieves the entry for a fingerprint.
	// Returns nil, nil when absent or when the artifact vanished from disk.
	Get(fingerprint string) (*domain.CacheEntry, error)

	// Put stores an entry.
	Put(entry domain.CacheEntry) error

	// Dir returns the cache directory artifacts should be written into.
	Dir() string

	// Clean removes the entire cache directory. The next invocation
	// regenerates on demand.
	Clean() error
}
