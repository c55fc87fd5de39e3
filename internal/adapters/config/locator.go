// Package config implements the tsconfig locator for tscheck.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/tidwall/jsonc"
	"github.com/tscheck/tscheck/internal/core/domain"
	"github.com/tscheck/tscheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ConfigLocator = (*Locator)(nil)

// Locator implements ports.ConfigLocator. It walks the directory tree upward
// for the nearest tsconfig, resolves the extends chain and flattens it into a
// domain.EffectiveConfig. All caches are instance-owned so tests can construct
// isolated locators.
type Locator struct {
	logger         ports.Logger
	configFileName string

	mu          sync.Mutex
	dirCache    map[string]*domain.EffectiveConfig
	originCache map[string]*domain.EffectiveConfig
}

// NewLocator creates a new Locator with the given logger.
func NewLocator(logger ports.Logger) *Locator {
	return &Locator{
		logger:         logger,
		configFileName: domain.ConfigFileName,
		dirCache:       make(map[string]*domain.EffectiveConfig),
		originCache:    make(map[string]*domain.EffectiveConfig),
	}
}

// WithConfigFileName overrides the config file name. Used by tests.
func (l *Locator) WithConfigFileName(name string) *Locator {
	l.configFileName = name
	return l
}

// ResolveFile resolves the configuration governing the given file.
func (l *Locator) ResolveFile(path string) (*domain.EffectiveConfig, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.With(domain.ErrFileOutsideProject, "cause", err.Error()), "path", path)
	}
	return l.Resolve(filepath.Dir(abs))
}

// Resolve walks upward from startDir looking for the configuration file.
// The first one found is the origin; its extends chain is flattened into the
// returned EffectiveConfig. Every directory visited during a successful walk
// is cached so sibling files skip the filesystem entirely.
func (l *Locator) Resolve(startDir string) (*domain.EffectiveConfig, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return nil, zerr.With(zerr.With(domain.ErrFileOutsideProject, "cause", err.Error()), "dir", startDir)
	}

	l.mu.Lock()
	if cfg, ok := l.dirCache[abs]; ok {
		l.mu.Unlock()
		return cfg, nil
	}
	l.mu.Unlock()

	visited := []string{}
	currentDir := abs
	for {
		candidate := filepath.Join(currentDir, l.configFileName)
		if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
			cfg, resolveErr := l.ResolvePath(candidate)
			if resolveErr != nil {
				return nil, resolveErr
			}

			l.mu.Lock()
			for _, dir := range visited {
				l.dirCache[dir] = cfg
			}
			l.dirCache[currentDir] = cfg
			l.mu.Unlock()
			return cfg, nil
		}

		visited = append(visited, currentDir)
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return nil, zerr.With(domain.ErrConfigNotFound, "start_dir", abs)
}

// ResolvePath parses and flattens an explicitly chosen config file.
func (l *Locator) ResolvePath(configPath string) (*domain.EffectiveConfig, error) {
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return nil, zerr.With(zerr.With(domain.ErrConfigRead, "cause", err.Error()), "path", configPath)
	}

	l.mu.Lock()
	if cfg, ok := l.originCache[abs]; ok {
		l.mu.Unlock()
		return cfg, nil
	}
	l.mu.Unlock()

	cfg, err := l.flatten(abs)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("resolved effective config: " + abs)

	l.mu.Lock()
	l.originCache[abs] = cfg
	l.mu.Unlock()
	return cfg, nil
}

// chainLink is one parsed member of an extends chain.
type chainLink struct {
	path string
	raw  []byte
	file *tsconfigFile
}

func (l *Locator) flatten(originPath string) (*domain.EffectiveConfig, error) {
	chain, err := l.expandChain(originPath, nil)
	if err != nil {
		return nil, err
	}

	cfg := &domain.EffectiveConfig{
		Origin:          originPath,
		Raw:             chain[len(chain)-1].raw,
		CompilerOptions: make(map[string]any),
	}

	// pathsDir tracks which config declared the winning "paths" object; its
	// directory is the mapping base when no baseUrl is set.
	pathsDir := cfg.Dir()
	for _, link := range chain {
		mergeLink(cfg, link)
		if _, ok := link.file.CompilerOptions["paths"]; ok {
			pathsDir = filepath.Dir(link.path)
		}
	}

	extractOptions(cfg, pathsDir)
	return cfg, nil
}

// expandChain resolves the extends chain rooted at configPath into a linear
// precedence list, most-base first, configPath itself last. active holds the
// paths currently being expanded, for cycle detection.
func (l *Locator) expandChain(configPath string, active []string) ([]chainLink, error) {
	if slices.Contains(active, configPath) {
		return nil, zerr.With(domain.ErrConfigExtendsCycle, "path", configPath)
	}
	active = append(active, configPath)

	link, err := parseConfigFile(configPath)
	if err != nil {
		return nil, err
	}

	var chain []chainLink
	for _, ref := range link.file.Extends {
		refPath, refErr := l.resolveExtendsRef(ref, filepath.Dir(configPath))
		if refErr != nil {
			return nil, zerr.With(refErr, "referenced_from", configPath)
		}

		baseChain, baseErr := l.expandChain(refPath, active)
		if baseErr != nil {
			return nil, baseErr
		}
		chain = append(chain, baseChain...)
	}

	return append(chain, link), nil
}

// resolveExtendsRef resolves one extends reference against the directory of
// the declaring config. Relative and absolute references resolve as paths
// with an implied .json extension; bare specifiers resolve through the
// nearest node_modules trees, require-style.
func (l *Locator) resolveExtendsRef(ref, fromDir string) (string, error) {
	if strings.HasPrefix(ref, "./") || strings.HasPrefix(ref, "../") || filepath.IsAbs(ref) {
		base := ref
		if !filepath.IsAbs(base) {
			base = filepath.Join(fromDir, ref)
		}
		if path, ok := probeConfigPath(base); ok {
			return path, nil
		}
		return "", zerr.With(domain.ErrExtendsNotFound, "extends", ref)
	}

	for dir := fromDir; ; dir = filepath.Dir(dir) {
		candidate := filepath.Join(dir, domain.NodeModulesDirName, filepath.FromSlash(ref))
		if path, ok := probePackageConfig(candidate); ok {
			return path, nil
		}
		if filepath.Dir(dir) == dir {
			break
		}
	}
	return "", zerr.With(domain.ErrExtendsNotFound, "extends", ref)
}

// probeConfigPath tries base as a config file, then base.json, then
// base/tsconfig.json.
func probeConfigPath(base string) (string, bool) {
	for _, candidate := range []string{base, base + ".json", filepath.Join(base, domain.ConfigFileName)} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// probePackageConfig resolves a bare specifier candidate inside node_modules,
// honoring a package.json "tsconfig" field when the candidate is a package
// directory.
func probePackageConfig(candidate string) (string, bool) {
	if info, err := os.Stat(candidate); err == nil && info.IsDir() {
		pkgPath := filepath.Join(candidate, "package.json")
		if data, readErr := os.ReadFile(pkgPath); readErr == nil { //nolint:gosec // path is under node_modules
			var pkg struct {
				TSConfig string `json:"tsconfig"`
			}
			if json.Unmarshal(jsonc.ToJSON(data), &pkg) == nil && pkg.TSConfig != "" {
				declared := filepath.Join(candidate, filepath.FromSlash(pkg.TSConfig))
				if di, statErr := os.Stat(declared); statErr == nil && !di.IsDir() {
					return declared, true
				}
			}
		}
	}
	return probeConfigPath(candidate)
}

func parseConfigFile(path string) (chainLink, error) {
	// #nosec G304 -- path comes from the walk or a validated extends ref
	data, err := os.ReadFile(path)
	if err != nil {
		return chainLink{}, zerr.With(zerr.With(domain.ErrConfigRead, "cause", err.Error()), "path", path)
	}

	var file tsconfigFile
	if parseErr := json.Unmarshal(jsonc.ToJSON(data), &file); parseErr != nil {
		err := zerr.With(domain.ErrConfigParse, "cause", parseErr.Error())
		return chainLink{}, zerr.With(err, "path", path)
	}

	return chainLink{path: path, raw: data, file: &file}, nil
}

// mergeLink applies one chain member on top of the accumulated config.
// Scalar and array options override per key; "types" concatenates with
// de-duplication. File lists override per key and are re-rooted against the
// declaring config's directory so inherited relative patterns stay correct.
func mergeLink(cfg *domain.EffectiveConfig, link chainLink) {
	linkDir := filepath.Dir(link.path)

	for key, value := range link.file.CompilerOptions {
		if key == "types" {
			cfg.CompilerOptions[key] = concatStrings(cfg.CompilerOptions[key], value)
			continue
		}
		cfg.CompilerOptions[key] = rerootOption(key, value, linkDir)
	}

	if link.file.Include != nil {
		cfg.Include = rerootPatterns(link.file.Include, linkDir)
	}
	if link.file.Exclude != nil {
		cfg.Exclude = rerootPatterns(link.file.Exclude, linkDir)
	}
	if link.file.Files != nil {
		cfg.Files = rerootPatterns(link.file.Files, linkDir)
	}
}

// rerootOption makes path-valued options absolute relative to the config that
// declared them, so inheriting projects see the base project's locations.
func rerootOption(key string, value any, linkDir string) any {
	switch key {
	case "baseUrl", "tsBuildInfoFile", "outDir", "rootDir", "declarationDir":
		if s, ok := value.(string); ok && !filepath.IsAbs(s) {
			return filepath.Clean(filepath.Join(linkDir, filepath.FromSlash(s)))
		}
	}
	return value
}

func rerootPatterns(patterns []string, linkDir string) []string {
	rerooted := make([]string, len(patterns))
	for i, p := range patterns {
		if filepath.IsAbs(p) {
			rerooted[i] = filepath.Clean(p)
			continue
		}
		rerooted[i] = filepath.Join(linkDir, filepath.FromSlash(p))
	}
	return rerooted
}

func concatStrings(existing, incoming any) []string {
	var out []string
	for _, v := range toStrings(existing) {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	for _, v := range toStrings(incoming) {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

func toStrings(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// extractOptions lifts the discovery-relevant options out of the merged map.
// Paths substitutions resolve against baseUrl when set, otherwise against the
// directory of the config that declared the paths object.
func extractOptions(cfg *domain.EffectiveConfig, pathsDir string) {
	if v, ok := cfg.CompilerOptions["baseUrl"].(string); ok {
		cfg.BaseURL = v
	}
	if v, ok := cfg.CompilerOptions["composite"].(bool); ok {
		cfg.Composite = v
	}
	if v, ok := cfg.CompilerOptions["incremental"].(bool); ok {
		cfg.Incremental = v
	}
	if v, ok := cfg.CompilerOptions["tsBuildInfoFile"].(string); ok {
		cfg.TSBuildInfoFile = v
	}

	rawPaths, ok := cfg.CompilerOptions["paths"].(map[string]any)
	if !ok || len(rawPaths) == 0 {
		return
	}

	mappingBase := cfg.BaseURL
	if mappingBase == "" {
		mappingBase = pathsDir
	}

	cfg.Paths = make(map[string][]string, len(rawPaths))
	for pattern, subs := range rawPaths {
		resolved := make([]string, 0)
		for _, sub := range toStrings(subs) {
			if filepath.IsAbs(sub) {
				resolved = append(resolved, filepath.Clean(sub))
				continue
			}
			resolved = append(resolved, filepath.Join(mappingBase, filepath.FromSlash(sub)))
		}
		cfg.Paths[pattern] = resolved
	}
}
