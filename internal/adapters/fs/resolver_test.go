package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tscheck/tscheck/internal/adapters/fs"
	"github.com/tscheck/tscheck/internal/core/domain"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("export {}\n"), 0o600))
}

func TestResolve_RelativeWithExtensionProbing(t *testing.T) {
	tmpDir := t.TempDir()
	touch(t, filepath.Join(tmpDir, "src", "util.ts"))

	r := fs.NewResolver()
	cfg := &domain.EffectiveConfig{}

	path, ok := r.Resolve("./util", filepath.Join(tmpDir, "src"), cfg)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(tmpDir, "src", "util.ts"), path)
}

func TestResolve_ExplicitExtension(t *testing.T) {
	tmpDir := t.TempDir()
	touch(t, filepath.Join(tmpDir, "types.d.ts"))

	r := fs.NewResolver()
	path, ok := r.Resolve("./types.d.ts", tmpDir, &domain.EffectiveConfig{})
	require.True(t, ok)
	assert.Equal(t, filepath.Join(tmpDir, "types.d.ts"), path)
}

func TestResolve_EmittedExtensionRewrite(t *testing.T) {
	tmpDir := t.TempDir()
	touch(t, filepath.Join(tmpDir, "module.ts"))

	// ESM-style imports name the emitted .js file; the source wins.
	r := fs.NewResolver()
	path, ok := r.Resolve("./module.js", tmpDir, &domain.EffectiveConfig{})
	require.True(t, ok)
	assert.Equal(t, filepath.Join(tmpDir, "module.ts"), path)
}

func TestResolve_IndexFallback(t *testing.T) {
	tmpDir := t.TempDir()
	touch(t, filepath.Join(tmpDir, "lib", "index.ts"))

	r := fs.NewResolver()
	path, ok := r.Resolve("./lib", tmpDir, &domain.EffectiveConfig{})
	require.True(t, ok)
	assert.Equal(t, filepath.Join(tmpDir, "lib", "index.ts"), path)
}

func TestResolve_BareSpecifierUnresolvable(t *testing.T) {
	r := fs.NewResolver()
	_, ok := r.Resolve("react", t.TempDir(), &domain.EffectiveConfig{})
	assert.False(t, ok)
}

func TestResolve_PathMappingWildcard(t *testing.T) {
	tmpDir := t.TempDir()
	touch(t, filepath.Join(tmpDir, "src", "app", "store.ts"))

	cfg := &domain.EffectiveConfig{
		Paths: map[string][]string{
			"@app/*": {filepath.Join(tmpDir, "src", "app", "*")},
		},
	}

	r := fs.NewResolver()
	path, ok := r.Resolve("@app/store", tmpDir, cfg)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(tmpDir, "src", "app", "store.ts"), path)
}

func TestResolve_PathMappingExact(t *testing.T) {
	tmpDir := t.TempDir()
	touch(t, filepath.Join(tmpDir, "src", "lib", "index.ts"))

	cfg := &domain.EffectiveConfig{
		Paths: map[string][]string{
			"@lib": {filepath.Join(tmpDir, "src", "lib", "index.ts")},
		},
	}

	r := fs.NewResolver()
	path, ok := r.Resolve("@lib", tmpDir, cfg)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(tmpDir, "src", "lib", "index.ts"), path)
}

func TestResolve_MissingFile(t *testing.T) {
	r := fs.NewResolver()
	_, ok := r.Resolve("./nope", t.TempDir(), &domain.EffectiveConfig{})
	assert.False(t, ok)
}

func TestCompanions_DeclarationAndGeneratedSiblings(t *testing.T) {
	tmpDir := t.TempDir()
	touch(t, filepath.Join(tmpDir, "api.ts"))
	touch(t, filepath.Join(tmpDir, "api.d.ts"))
	touch(t, filepath.Join(tmpDir, "api.gen.ts"))

	r := fs.NewResolver()
	companions := r.Companions(filepath.Join(tmpDir, "api.ts"))
	assert.Equal(t, []string{
		filepath.Join(tmpDir, "api.d.ts"),
		filepath.Join(tmpDir, "api.gen.ts"),
	}, companions)
}

func TestCompanions_DeclarationFileHasNone(t *testing.T) {
	tmpDir := t.TempDir()
	touch(t, filepath.Join(tmpDir, "api.d.ts"))

	r := fs.NewResolver()
	assert.Nil(t, r.Companions(filepath.Join(tmpDir, "api.d.ts")))
}
