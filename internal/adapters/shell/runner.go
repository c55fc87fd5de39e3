// Package shell provides the compiler execution adapter.
package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/tscheck/tscheck/internal/core/domain"
	"github.com/tscheck/tscheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CompilerRunner = (*Runner)(nil)

// Runner implements ports.CompilerRunner using os/exec.
// Compiler diagnostics stream straight through to the user; this tool never
// reinterprets them.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run invokes the compiler against the synthesized config.
func (r *Runner) Run(ctx context.Context, cmd ports.CompilerCommand, projectPath string) error {
	args := append(slices.Clone(cmd.Args), "--project", projectPath)

	r.logger.Debug("running " + cmd.Exe + " " + strings.Join(args, " "))

	proc := exec.CommandContext(ctx, cmd.Exe, args...) //nolint:gosec // command tuple comes from lockfile detection
	proc.Stdout = os.Stdout
	proc.Stderr = os.Stderr
	proc.Stdin = os.Stdin

	if err := proc.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The compiler ran and found problems; that is a check failure,
			// not a tool failure.
			return zerr.With(domain.ErrCheckFailed, "exit_code", exitErr.ExitCode())
		}
		err = zerr.With(domain.ErrCompilerRunFailed, "cause", err.Error())
		return zerr.With(err, "command", cmd.Exe)
	}
	return nil
}
