package cache

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
	"github.com/tscheck/tscheck/internal/adapters/pm" //nolint:depguard // Wired in adapter wiring
	"github.com/tscheck/tscheck/internal/core/domain"
	"github.com/tscheck/tscheck/internal/core/ports"
)

// NodeID is the unique identifier for the artifact cache Graft node.
const NodeID graft.ID = "adapter.artifact_cache"

func init() {
	graft.Register(graft.Node[ports.ArtifactCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{pm.NodeID},
		Run: func(ctx context.Context) (ports.ArtifactCache, error) {
			locator, err := graft.Dep[ports.CompilerLocator](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(resolveCacheDir(locator)), nil
		},
	})
}

// resolveCacheDir places the cache under the project's node_modules when one
// exists, keeping artifacts out of the working tree; otherwise it falls back
// to a per-user temp location.
func resolveCacheDir(locator ports.CompilerLocator) string {
	root, err := locator.DepsRoot(".")
	if err == nil {
		if info, statErr := os.Stat(filepath.Join(root, domain.NodeModulesDirName)); statErr == nil && info.IsDir() {
			return domain.CacheDir(root)
		}
	}
	return filepath.Join(os.TempDir(), domain.ToolName)
}
