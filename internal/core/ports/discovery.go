package ports

import (
	"context"

	"github.com/tscheck/tscheck/internal/core/domain"
)

// DependencyDiscoverer expands a file group with its statically reachable
// imports and convention-matched ambient declaration files.
//
// Discovery is a deliberately lossy approximation of the compiler's module
// resolution: unresolved specifiers are skipped silently, and the compiler
// remains the authority for real resolution errors.
//
//go:generate mockgen -source=discovery.go -destination=mocks/mock_discovery.go -package=mocks
type DependencyDiscoverer interface {
	// Expand populates group.Discovered and group.Notice, bounded by limits.
	// recursive=false disables import traversal but keeps the ambient scan.
	// The context is checked between frontier visits so a pathological
	// traversal can be cancelled.
	Expand(ctx context.Context, group *domain.FileGroup, limits domain.DiscoveryLimits, recursive bool) error
}
