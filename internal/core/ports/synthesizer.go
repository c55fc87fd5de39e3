package ports

import (
	"context"

	"github.com/tscheck/tscheck/internal/core/domain"
)

// ConfigSynthesizer produces the derived configuration artifact for a group.
//
//go:generate mockgen -source=synthesizer.go -destination=mocks/mock_synthesizer.go -package=mocks
type ConfigSynthesizer interface {
	// Synthesize builds a config that extends the group's origin, overrides
	// the file set and applies check-mode flags. With caching enabled an
	// existing artifact for the same fingerprint is reused without rewriting.
	// Writes are atomic; a non-nil Cleanup on the result must be run on every
	// exit path of the invocation.
	Synthesize(ctx context.Context, group *domain.FileGroup, opts domain.CheckOptions) (*domain.SynthesizedConfig, error)
}
