package synth_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tscheck/tscheck/internal/adapters/cache"
	"github.com/tscheck/tscheck/internal/adapters/config"
	"github.com/tscheck/tscheck/internal/adapters/synth"
	"github.com/tscheck/tscheck/internal/core/domain"
	"github.com/tscheck/tscheck/internal/core/ports/mocks"
)

func newSynthesizer(t *testing.T, cacheDir string) *synth.Synthesizer {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return synth.New(cache.NewStore(cacheDir), log)
}

func fixtureGroup(t *testing.T) *domain.FileGroup {
	t.Helper()
	tmpDir := t.TempDir()
	origin := filepath.Join(tmpDir, "tsconfig.json")
	raw := []byte(`{"compilerOptions": {"strict": true}}`)
	require.NoError(t, os.WriteFile(origin, raw, 0o600))

	main := filepath.Join(tmpDir, "main.ts")
	require.NoError(t, os.WriteFile(main, []byte("export {}\n"), 0o600))

	return &domain.FileGroup{
		Config: &domain.EffectiveConfig{Origin: origin, Raw: raw},
		Inputs: []string{main},
	}
}

func defaultOpts() domain.CheckOptions {
	return domain.DefaultCheckOptions()
}

func readDocument(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestSynthesize_WritesArtifactExtendingOrigin(t *testing.T) {
	cacheDir := filepath.Join(t.TempDir(), "cache")
	group := fixtureGroup(t)

	s := newSynthesizer(t, cacheDir)
	result, err := s.Synthesize(context.Background(), group, defaultOpts())
	require.NoError(t, err)

	assert.False(t, result.Cached)
	assert.Nil(t, result.Cleanup)
	assert.Len(t, result.Fingerprint, 16)
	assert.Equal(t, cacheDir, filepath.Dir(result.Path))
	assert.True(t, strings.HasPrefix(filepath.Base(result.Path), "tscheck-"+result.Fingerprint+"-"))

	doc := readDocument(t, result.Path)
	assert.Equal(t, filepath.ToSlash(group.Config.Origin), doc["extends"])
	assert.Equal(t, []any{}, doc["include"])

	co, ok := doc["compilerOptions"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, co["noEmit"])
	assert.Equal(t, false, co["skipLibCheck"])

	files, ok := doc["files"].([]any)
	require.True(t, ok)
	require.Len(t, files, 1)
	// Files are written relative to the artifact's directory.
	rel, relErr := filepath.Rel(cacheDir, group.Inputs[0])
	require.NoError(t, relErr)
	assert.Equal(t, filepath.ToSlash(rel), files[0])
}

func TestSynthesize_ArtifactRoundTripsThroughLocator(t *testing.T) {
	cacheDir := filepath.Join(t.TempDir(), "cache")
	tmpDir := t.TempDir()
	origin := filepath.Join(tmpDir, "tsconfig.json")
	raw := []byte(`{
		"compilerOptions": {
			"strict": true,
			"target": "es2022",
			"moduleResolution": "bundler",
			"types": ["node"]
		}
	}`)
	require.NoError(t, os.WriteFile(origin, raw, 0o600))
	main := filepath.Join(tmpDir, "main.ts")
	require.NoError(t, os.WriteFile(main, []byte("export {}\n"), 0o600))

	group := &domain.FileGroup{
		Config: &domain.EffectiveConfig{Origin: origin, Raw: raw},
		Inputs: []string{main},
	}

	s := newSynthesizer(t, cacheDir)
	result, err := s.Synthesize(context.Background(), group, defaultOpts())
	require.NoError(t, err)

	// Flattening the artifact's extends chain must reproduce the origin's
	// options, with only the scoping overrides on top.
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	resolved, err := config.NewLocator(log).ResolvePath(result.Path)
	require.NoError(t, err)

	want := map[string]any{
		"strict":           true,
		"target":           "es2022",
		"moduleResolution": "bundler",
		"types":            []string{"node"},
		"noEmit":           true,
		"skipLibCheck":     false,
	}
	assert.Equal(t, want, resolved.CompilerOptions)

	require.Len(t, resolved.Files, 1)
	assert.Equal(t, main, resolved.Files[0])
	assert.Empty(t, resolved.Include)
}

func TestSynthesize_SecondRunHitsCache(t *testing.T) {
	cacheDir := filepath.Join(t.TempDir(), "cache")
	group := fixtureGroup(t)

	s := newSynthesizer(t, cacheDir)
	first, err := s.Synthesize(context.Background(), group, defaultOpts())
	require.NoError(t, err)

	second, err := s.Synthesize(context.Background(), group, defaultOpts())
	require.NoError(t, err)

	assert.True(t, second.Cached)
	assert.Nil(t, second.Cleanup)
	assert.Equal(t, first.Path, second.Path)
	assert.Equal(t, first.Fingerprint, second.Fingerprint)
}

func TestSynthesize_FingerprintSensitivity(t *testing.T) {
	cacheDir := filepath.Join(t.TempDir(), "cache")
	group := fixtureGroup(t)

	s := newSynthesizer(t, cacheDir)
	base, err := s.Synthesize(context.Background(), group, defaultOpts())
	require.NoError(t, err)

	// A different file set fingerprints differently.
	extra := filepath.Join(filepath.Dir(group.Inputs[0]), "extra.ts")
	require.NoError(t, os.WriteFile(extra, []byte("export {}\n"), 0o600))
	widened := &domain.FileGroup{Config: group.Config, Inputs: append([]string{extra}, group.Inputs...)}
	other, err := s.Synthesize(context.Background(), widened, defaultOpts())
	require.NoError(t, err)
	assert.NotEqual(t, base.Fingerprint, other.Fingerprint)

	// So does a flipped override flag.
	opts := defaultOpts()
	opts.SkipLibCheck = true
	flipped, err := s.Synthesize(context.Background(), group, opts)
	require.NoError(t, err)
	assert.NotEqual(t, base.Fingerprint, flipped.Fingerprint)

	// And the original inputs still restore the original fingerprint.
	restored, err := s.Synthesize(context.Background(), group, defaultOpts())
	require.NoError(t, err)
	assert.Equal(t, base.Fingerprint, restored.Fingerprint)
	assert.True(t, restored.Cached)
}

func TestSynthesize_ConfigContentChangesFingerprint(t *testing.T) {
	cacheDir := filepath.Join(t.TempDir(), "cache")
	group := fixtureGroup(t)

	s := newSynthesizer(t, cacheDir)
	base, err := s.Synthesize(context.Background(), group, defaultOpts())
	require.NoError(t, err)

	edited := &domain.FileGroup{
		Config: &domain.EffectiveConfig{
			Origin: group.Config.Origin,
			Raw:    []byte(`{"compilerOptions": {"strict": false}}`),
		},
		Inputs: group.Inputs,
	}
	changed, err := s.Synthesize(context.Background(), edited, defaultOpts())
	require.NoError(t, err)
	assert.NotEqual(t, base.Fingerprint, changed.Fingerprint)
}

func TestSynthesize_NoCacheIsEphemeral(t *testing.T) {
	cacheDir := filepath.Join(t.TempDir(), "cache")
	group := fixtureGroup(t)

	opts := defaultOpts()
	opts.Cache = false

	s := newSynthesizer(t, cacheDir)
	result, err := s.Synthesize(context.Background(), group, opts)
	require.NoError(t, err)

	require.NotNil(t, result.Cleanup)
	_, statErr := os.Stat(result.Path)
	require.NoError(t, statErr)

	require.NoError(t, result.Cleanup())
	_, statErr = os.Stat(result.Path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSynthesize_CompositeOriginNeutralized(t *testing.T) {
	cacheDir := filepath.Join(t.TempDir(), "cache")
	group := fixtureGroup(t)
	group.Config.Composite = true

	s := newSynthesizer(t, cacheDir)
	result, err := s.Synthesize(context.Background(), group, defaultOpts())
	require.NoError(t, err)

	doc := readDocument(t, result.Path)
	co := doc["compilerOptions"].(map[string]any)
	assert.Equal(t, false, co["composite"])

	// Build info is redirected into the cache dir, not the working tree.
	info, ok := co["tsBuildInfoFile"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(info, filepath.ToSlash(cacheDir)))
}

func TestSynthesize_OriginPinnedBuildInfoRespected(t *testing.T) {
	cacheDir := filepath.Join(t.TempDir(), "cache")
	group := fixtureGroup(t)
	group.Config.Incremental = true
	group.Config.TSBuildInfoFile = "/var/tmp/pinned.tsbuildinfo"

	s := newSynthesizer(t, cacheDir)
	result, err := s.Synthesize(context.Background(), group, defaultOpts())
	require.NoError(t, err)

	doc := readDocument(t, result.Path)
	co := doc["compilerOptions"].(map[string]any)
	_, present := co["tsBuildInfoFile"]
	assert.False(t, present)
}

func TestSynthesize_ExtraIncludesJoinFileSet(t *testing.T) {
	cacheDir := filepath.Join(t.TempDir(), "cache")
	group := fixtureGroup(t)
	decl := filepath.Join(filepath.Dir(group.Inputs[0]), "globals.d.ts")
	require.NoError(t, os.WriteFile(decl, []byte("declare const X: number;\n"), 0o600))

	opts := defaultOpts()
	opts.ExtraIncludes = []string{decl}

	s := newSynthesizer(t, cacheDir)
	result, err := s.Synthesize(context.Background(), group, opts)
	require.NoError(t, err)
	assert.Contains(t, result.Files, decl)
}
