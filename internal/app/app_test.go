package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	adapterfs "github.com/tscheck/tscheck/internal/adapters/fs"
	"github.com/tscheck/tscheck/internal/app"
	"github.com/tscheck/tscheck/internal/core/domain"
	"github.com/tscheck/tscheck/internal/core/ports"
	"github.com/tscheck/tscheck/internal/core/ports/mocks"
	"github.com/tscheck/tscheck/internal/engine/discovery"
	"github.com/tscheck/tscheck/internal/engine/grouper"
)

// harness wires an App around a mocked locator, synthesizer, compiler and
// tracer, with the real grouper and discovery engine in the middle.
type harness struct {
	app         *app.App
	locator     *mocks.MockConfigLocator
	synthesizer *mocks.MockConfigSynthesizer
	compiler    *mocks.MockCompilerLocator
	runner      *mocks.MockCompilerRunner
	cache       *mocks.MockArtifactCache
	tracer      *mocks.MockTracer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	h := &harness{
		locator:     mocks.NewMockConfigLocator(ctrl),
		synthesizer: mocks.NewMockConfigSynthesizer(ctrl),
		compiler:    mocks.NewMockCompilerLocator(ctrl),
		runner:      mocks.NewMockCompilerRunner(ctrl),
		cache:       mocks.NewMockArtifactCache(ctrl),
		tracer:      mocks.NewMockTracer(ctrl),
	}

	engine := discovery.New(adapterfs.NewScanner(), adapterfs.NewResolver(), adapterfs.NewWalker(), log)
	h.app = app.New(
		grouper.New(h.locator),
		engine,
		h.synthesizer,
		h.compiler,
		h.runner,
		h.cache,
		h.tracer,
		log,
	)
	return h
}

// expectSpan satisfies one tracer Start/End round trip per group.
func (h *harness) expectSpan(ctrl *gomock.Controller, times int) {
	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End(gomock.Any()).Times(times)
	span.EXPECT().Cached().AnyTimes()
	h.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, span
		}).Times(times)
}

func fixtureFile(t *testing.T) (string, *domain.EffectiveConfig) {
	t.Helper()
	tmpDir := t.TempDir()
	main := filepath.Join(tmpDir, "main.ts")
	require.NoError(t, os.WriteFile(main, []byte("export {}\n"), 0o600))
	cfg := &domain.EffectiveConfig{
		Origin: filepath.Join(tmpDir, "tsconfig.json"),
		Files:  []string{main},
	}
	return main, cfg
}

func TestCheck_HappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newHarness(t)
	main, cfg := fixtureFile(t)

	cleanedUp := false
	synthCfg := &domain.SynthesizedConfig{
		Path:        "/tmp/derived.json",
		Fingerprint: "abcdef0123456789",
		Files:       []string{main},
		Cleanup:     func() error { cleanedUp = true; return nil },
	}
	cmd := ports.CompilerCommand{Exe: "npx", Args: []string{"tsc"}}

	h.locator.EXPECT().ResolveFile(main).Return(cfg, nil)
	h.synthesizer.EXPECT().Synthesize(gomock.Any(), gomock.Any(), gomock.Any()).Return(synthCfg, nil)
	h.compiler.EXPECT().Locate(cfg.Dir()).Return(cmd, nil)
	h.runner.EXPECT().Run(gomock.Any(), cmd, synthCfg.Path).Return(nil)
	h.expectSpan(ctrl, 1)

	err := h.app.Check(context.Background(), []string{main}, domain.DefaultCheckOptions())
	require.NoError(t, err)
	assert.True(t, cleanedUp, "ephemeral artifact must be cleaned up")
}

func TestCheck_CompilerDiagnosticsSurfaceAsCheckFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newHarness(t)
	main, cfg := fixtureFile(t)

	synthCfg := &domain.SynthesizedConfig{Path: "/tmp/derived.json", Files: []string{main}}

	h.locator.EXPECT().ResolveFile(main).Return(cfg, nil)
	h.synthesizer.EXPECT().Synthesize(gomock.Any(), gomock.Any(), gomock.Any()).Return(synthCfg, nil)
	h.compiler.EXPECT().Locate(gomock.Any()).Return(ports.CompilerCommand{Exe: "npx"}, nil)
	h.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.ErrCheckFailed)
	h.expectSpan(ctrl, 1)

	err := h.app.Check(context.Background(), []string{main}, domain.DefaultCheckOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCheckFailed))
}

func TestCheck_FailingGroupDoesNotStopOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newHarness(t)
	okFile, okCfg := fixtureFile(t)
	badFile, badCfg := fixtureFile(t)

	h.locator.EXPECT().ResolveFile(okFile).Return(okCfg, nil)
	h.locator.EXPECT().ResolveFile(badFile).Return(badCfg, nil)

	h.synthesizer.EXPECT().Synthesize(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, group *domain.FileGroup, _ domain.CheckOptions) (*domain.SynthesizedConfig, error) {
			return &domain.SynthesizedConfig{Path: group.Config.Origin + ".derived", Files: group.Inputs}, nil
		}).Times(2)
	h.compiler.EXPECT().Locate(gomock.Any()).Return(ports.CompilerCommand{Exe: "npx"}, nil).Times(2)

	h.runner.EXPECT().Run(gomock.Any(), gomock.Any(), okCfg.Origin+".derived").Return(nil)
	h.runner.EXPECT().Run(gomock.Any(), gomock.Any(), badCfg.Origin+".derived").Return(domain.ErrCheckFailed)
	h.expectSpan(ctrl, 2)

	err := h.app.Check(context.Background(), []string{okFile, badFile}, domain.DefaultCheckOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCheckFailed))
}

func TestCheck_CachedArtifactMarksSpan(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newHarness(t)
	main, cfg := fixtureFile(t)

	synthCfg := &domain.SynthesizedConfig{Path: "/tmp/derived.json", Files: []string{main}, Cached: true}

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().Cached()
	span.EXPECT().End(nil)
	h.tracer.EXPECT().Start(gomock.Any(), cfg.Origin).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, span
		})

	h.locator.EXPECT().ResolveFile(main).Return(cfg, nil)
	h.synthesizer.EXPECT().Synthesize(gomock.Any(), gomock.Any(), gomock.Any()).Return(synthCfg, nil)
	h.compiler.EXPECT().Locate(gomock.Any()).Return(ports.CompilerCommand{Exe: "npx"}, nil)
	h.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	err := h.app.Check(context.Background(), []string{main}, domain.DefaultCheckOptions())
	require.NoError(t, err)
}

func TestCheck_GroupingErrorAborts(t *testing.T) {
	h := newHarness(t)

	h.locator.EXPECT().ResolveFile(gomock.Any()).Return(nil, domain.ErrConfigNotFound)

	err := h.app.Check(context.Background(), []string{"orphan.ts"}, domain.DefaultCheckOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigNotFound))
}

func TestClean_DelegatesToCache(t *testing.T) {
	h := newHarness(t)

	h.cache.EXPECT().Dir().Return("/tmp/tscheck")
	h.cache.EXPECT().Clean().Return(nil)

	require.NoError(t, h.app.Clean())
}

func TestClean_PropagatesFailure(t *testing.T) {
	h := newHarness(t)

	h.cache.EXPECT().Dir().Return("/tmp/tscheck")
	h.cache.EXPECT().Clean().Return(domain.ErrCacheWrite)

	err := h.app.Clean()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCacheWrite))
}
