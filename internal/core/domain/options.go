package domain

const (
	// DefaultMaxDepth bounds import traversal hops.
	DefaultMaxDepth = 20

	// DefaultMaxFiles soft-caps the expanded file set per group.
	DefaultMaxFiles = 100
)

// CheckOptions is the option bundle consumed by a check invocation.
// Flag values override file values override defaults.
type CheckOptions struct {
	// ConfigPath is an explicit tsconfig override. When set, the upward walk
	// is skipped and every input joins a single group under this config.
	ConfigPath string

	// MaxDepth and MaxFiles bound dependency discovery.
	MaxDepth int
	MaxFiles int

	// Recursive enables import-graph traversal. The ambient declaration scan
	// runs either way.
	Recursive bool

	// Cache enables fingerprint-keyed reuse of synthesized configs.
	Cache bool

	// SkipLibCheck forwards skipLibCheck to the synthesized config.
	SkipLibCheck bool

	// ExtraIncludes are user-supplied paths added to every group's file set.
	ExtraIncludes []string

	// Verbose enables debug-level logging.
	Verbose bool
}

// DefaultCheckOptions returns the documented defaults.
func DefaultCheckOptions() CheckOptions {
	return CheckOptions{
		MaxDepth:  DefaultMaxDepth,
		MaxFiles:  DefaultMaxFiles,
		Recursive: true,
		Cache:     true,
	}
}

// Limits returns the discovery limits carried by the options.
func (o CheckOptions) Limits() DiscoveryLimits {
	return DiscoveryLimits{MaxDepth: o.MaxDepth, MaxFiles: o.MaxFiles}
}
