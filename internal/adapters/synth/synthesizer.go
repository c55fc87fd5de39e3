// Package synth builds derived configuration artifacts scoping a compiler run
// to a file group.
package synth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/tscheck/tscheck/internal/core/domain"
	"github.com/tscheck/tscheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ConfigSynthesizer = (*Synthesizer)(nil)

// Synthesizer implements ports.ConfigSynthesizer on top of an ArtifactCache.
type Synthesizer struct {
	cache  ports.ArtifactCache
	logger ports.Logger
}

// New creates a new Synthesizer.
func New(cache ports.ArtifactCache, logger ports.Logger) *Synthesizer {
	return &Synthesizer{cache: cache, logger: logger}
}

// Synthesize builds the derived config for a group, or reuses a cached
// artifact with the same fingerprint. Uncached artifacts carry a Cleanup the
// caller must run on every exit path.
func (s *Synthesizer) Synthesize(ctx context.Context, group *domain.FileGroup, opts domain.CheckOptions) (*domain.SynthesizedConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, zerr.Wrap(err, "synthesis cancelled")
	}

	files, err := collectFiles(group, opts.ExtraIncludes)
	if err != nil {
		return nil, err
	}

	fingerprint := computeFingerprint(group.Config.Raw, files, opts)

	if opts.Cache {
		entry, getErr := s.cache.Get(fingerprint)
		if getErr != nil {
			return nil, getErr
		}
		if entry != nil {
			s.logger.Debug("reusing cached config " + entry.ArtifactPath)
			return &domain.SynthesizedConfig{
				Path:        entry.ArtifactPath,
				Fingerprint: fingerprint,
				Files:       files,
				Cached:      true,
			}, nil
		}
	}

	artifactDir := s.cache.Dir()
	path, err := s.writeArtifact(artifactDir, fingerprint, buildDocument(group.Config, files, opts, artifactDir, fingerprint))
	if err != nil {
		return nil, err
	}

	result := &domain.SynthesizedConfig{
		Path:        path,
		Fingerprint: fingerprint,
		Files:       files,
	}

	if opts.Cache {
		putErr := s.cache.Put(domain.CacheEntry{
			Fingerprint:  fingerprint,
			ArtifactPath: path,
			CreatedAt:    time.Now().UTC(),
		})
		if putErr != nil {
			_ = os.Remove(path)
			return nil, putErr
		}
	} else {
		result.Cleanup = func() error {
			return os.Remove(path)
		}
	}
	return result, nil
}

// collectFiles unions group inputs, discovered dependencies and user extras,
// de-duplicated and sorted for a deterministic fingerprint.
func collectFiles(group *domain.FileGroup, extraIncludes []string) ([]string, error) {
	files := group.AllFiles()
	for _, extra := range extraIncludes {
		abs, err := filepath.Abs(extra)
		if err != nil {
			return nil, zerr.With(zerr.With(domain.ErrFileOutsideProject, "cause", err.Error()), "path", extra)
		}
		files = append(files, abs)
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}

// computeFingerprint hashes the origin config content, the sorted file list
// and the override flags, NUL-separated. Content-derived on purpose: mtimes
// never participate, so touching a file without changing it still hits.
func computeFingerprint(originRaw []byte, files []string, opts domain.CheckOptions) string {
	digest := xxhash.New()
	_, _ = digest.Write(originRaw)
	_, _ = digest.Write([]byte{0})

	for _, f := range files {
		_, _ = digest.WriteString(f)
		_, _ = digest.Write([]byte{0})
	}
	_, _ = digest.Write([]byte{0})

	_, _ = digest.WriteString(fmt.Sprintf("skipLibCheck=%t", opts.SkipLibCheck))
	_, _ = digest.Write([]byte{0})

	return fmt.Sprintf("%016x", digest.Sum64())
}

// buildDocument assembles the derived tsconfig. It extends the origin by
// absolute path, lists the exact file set relative to the artifact directory,
// forces noEmit and redirects incremental build info away from the working
// tree for composite origins that did not pin a location themselves.
func buildDocument(cfg *domain.EffectiveConfig, files []string, opts domain.CheckOptions, artifactDir, fingerprint string) map[string]any {
	relFiles := make([]string, 0, len(files))
	for _, f := range files {
		if rel, err := filepath.Rel(artifactDir, f); err == nil {
			relFiles = append(relFiles, filepath.ToSlash(rel))
		} else {
			relFiles = append(relFiles, filepath.ToSlash(f))
		}
	}

	compilerOptions := map[string]any{
		"noEmit":       true,
		"skipLibCheck": opts.SkipLibCheck,
	}
	if cfg.Composite {
		// composite demands the full project file list, which is exactly what
		// a scoped check does not have.
		compilerOptions["composite"] = false
	}
	if (cfg.Composite || cfg.Incremental) && cfg.TSBuildInfoFile == "" {
		compilerOptions["tsBuildInfoFile"] = filepath.ToSlash(domain.BuildInfoPath(artifactDir, fingerprint))
	}

	return map[string]any{
		"extends":         filepath.ToSlash(cfg.Origin),
		"files":           relFiles,
		"include":         []string{},
		"compilerOptions": compilerOptions,
	}
}

// writeArtifact writes the document atomically under a collision-resistant
// random name, so concurrent group workers never clobber each other and a
// cancelled run never leaves a truncated artifact behind.
func (s *Synthesizer) writeArtifact(dir, fingerprint string, doc map[string]any) (string, error) {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.With(domain.ErrArtifactWrite, "cause", err.Error()), "dir", dir)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", zerr.With(domain.ErrArtifactWrite, "cause", err.Error())
	}

	name := fmt.Sprintf("%s-%s-%s.json", domain.ToolName, fingerprint, randomSuffix())
	path := filepath.Join(dir, name)

	tmp, err := os.CreateTemp(dir, ".artifact-*")
	if err != nil {
		return "", zerr.With(domain.ErrArtifactWrite, "cause", err.Error())
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", zerr.With(domain.ErrArtifactWrite, "cause", err.Error())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", zerr.With(domain.ErrArtifactWrite, "cause", err.Error())
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return "", zerr.With(zerr.With(domain.ErrArtifactWrite, "cause", err.Error()), "path", path)
	}

	s.logger.Debug("wrote synthesized config " + path)
	return path, nil
}

func randomSuffix() string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
