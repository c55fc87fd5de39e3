package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tscheck/tscheck/cmd/tscheck/commands"
	"github.com/tscheck/tscheck/internal/core/domain"
	"github.com/tscheck/tscheck/internal/core/ports/mocks"
)

// fakeApp records the last invocation so flag plumbing can be asserted.
type fakeApp struct {
	checkedFiles []string
	checkedOpts  domain.CheckOptions
	checkErr     error
	cleaned      bool
}

func (f *fakeApp) Check(_ context.Context, files []string, opts domain.CheckOptions) error {
	f.checkedFiles = files
	f.checkedOpts = opts
	return f.checkErr
}

func (f *fakeApp) Clean() error {
	f.cleaned = true
	return nil
}

func newCLI(t *testing.T, a commands.Application) (*commands.CLI, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	var out bytes.Buffer
	cli := commands.New(a, log)
	cli.SetOutput(&out, &out)
	return cli, &out
}

// chdir moves the test into an empty directory so no ambient tscheck.yaml
// can leak into option resolution.
func chdir(t *testing.T, dir string) {
	t.Helper()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	require.NoError(t, os.Chdir(dir))
}

func TestCheck_ForwardsFilesAndDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	app := &fakeApp{}
	cli, _ := newCLI(t, app)

	cli.SetArgs([]string{"check", "a.ts", "b.ts"})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Equal(t, []string{"a.ts", "b.ts"}, app.checkedFiles)
	assert.Equal(t, domain.DefaultCheckOptions(), app.checkedOpts)
}

func TestCheck_FlagsOverrideDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	app := &fakeApp{}
	cli, _ := newCLI(t, app)

	cli.SetArgs([]string{
		"check", "a.ts",
		"--project", "tsconfig.ci.json",
		"--max-depth", "5",
		"--max-files", "10",
		"--no-recursive",
		"--no-cache",
		"--skip-lib-check",
		"--include", "globals.d.ts",
		"--verbose",
	})
	require.NoError(t, cli.Execute(context.Background()))

	opts := app.checkedOpts
	assert.Equal(t, "tsconfig.ci.json", opts.ConfigPath)
	assert.Equal(t, 5, opts.MaxDepth)
	assert.Equal(t, 10, opts.MaxFiles)
	assert.False(t, opts.Recursive)
	assert.False(t, opts.Cache)
	assert.True(t, opts.SkipLibCheck)
	assert.Equal(t, []string{"globals.d.ts"}, opts.ExtraIncludes)
	assert.True(t, opts.Verbose)
}

func TestCheck_FlagsOverrideOptionsFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "tscheck.yaml"), []byte("maxFiles: 300\nmaxDepth: 7\n"), 0o600))
	chdir(t, tmpDir)

	app := &fakeApp{}
	cli, _ := newCLI(t, app)

	cli.SetArgs([]string{"check", "a.ts", "--max-files", "42"})
	require.NoError(t, cli.Execute(context.Background()))

	// The explicit flag wins, the file's other setting survives.
	assert.Equal(t, 42, app.checkedOpts.MaxFiles)
	assert.Equal(t, 7, app.checkedOpts.MaxDepth)
}

func TestCheck_NoArgsShowsHelp(t *testing.T) {
	chdir(t, t.TempDir())
	app := &fakeApp{}
	cli, out := newCLI(t, app)

	cli.SetArgs([]string{"check"})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Nil(t, app.checkedFiles)
	assert.Contains(t, out.String(), "Usage:")
}

func TestCheck_ErrorPropagates(t *testing.T) {
	chdir(t, t.TempDir())
	app := &fakeApp{checkErr: domain.ErrCheckFailed}
	cli, _ := newCLI(t, app)

	cli.SetArgs([]string{"check", "a.ts"})
	err := cli.Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrCheckFailed)
}

func TestClean_Invoked(t *testing.T) {
	app := &fakeApp{}
	cli, _ := newCLI(t, app)

	cli.SetArgs([]string{"clean"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, app.cleaned)
}

func TestVersion_PrintsBuildInfo(t *testing.T) {
	app := &fakeApp{}
	cli, out := newCLI(t, app)

	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "tscheck version dev")
}
