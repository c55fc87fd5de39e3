// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/tscheck/tscheck/internal/adapters/cache"
	_ "github.com/tscheck/tscheck/internal/adapters/config"
	_ "github.com/tscheck/tscheck/internal/adapters/fs"
	_ "github.com/tscheck/tscheck/internal/adapters/logger"
	_ "github.com/tscheck/tscheck/internal/adapters/pm"
	_ "github.com/tscheck/tscheck/internal/adapters/shell"
	_ "github.com/tscheck/tscheck/internal/adapters/synth"
	_ "github.com/tscheck/tscheck/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/tscheck/tscheck/internal/app"
	_ "github.com/tscheck/tscheck/internal/engine/discovery"
	_ "github.com/tscheck/tscheck/internal/engine/grouper"
)
