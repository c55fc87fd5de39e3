// Package ports defines the core interfaces for the application.
package ports

import "github.com/tscheck/tscheck/internal/core/domain"

// ConfigLocator resolves the nearest applicable project configuration.
//
//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type ConfigLocator interface {
	// Resolve walks upward from startDir to the filesystem root, parses the
	// first tsconfig found, flattens its extends chain and returns the
	// effective configuration. Results are cached per absolute directory for
	// the lifetime of the locator instance.
	Resolve(startDir string) (*domain.EffectiveConfig, error)

	// ResolveFile resolves the configuration governing the given file.
	ResolveFile(path string) (*domain.EffectiveConfig, error)

	// ResolvePath parses and flattens an explicitly chosen config file,
	// skipping the upward walk.
	ResolvePath(configPath string) (*domain.EffectiveConfig, error)
}
