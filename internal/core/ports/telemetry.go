package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans around units of work, one per
// file group being checked.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span represents one unit of work.
type Span interface {
	io.Writer
	// End completes the span, recording err when non-nil.
	End(err error)
	// Cached marks the span as satisfied from cache.
	Cached()
}
