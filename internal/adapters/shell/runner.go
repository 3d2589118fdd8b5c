// Package shell provides the os/exec runner adapter for external tools.
package shell

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"go.trai.ch/equip/internal/core/domain"
	"go.trai.ch/equip/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.Runner using os/exec. Invocations block until
// the subprocess exits; cancellation is delegated to the context.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes the command with an explicit working directory, streaming
// output to the command's sinks or, when absent, to the logger.
func (r *Runner) Run(ctx context.Context, c ports.Command) error {
	if len(c.Args) == 0 {
		return zerr.New("empty command")
	}

	cmd := exec.CommandContext(ctx, c.Args[0], c.Args[1:]...) //nolint:gosec // argv is built by the caller
	cmd.Dir = c.Dir

	cmd.Stdout = c.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = &logWriter{logger: r.logger}
	}
	var stderrTail strings.Builder
	stderr := io.Writer(&stderrTail)
	if c.Stderr != nil {
		stderr = io.MultiWriter(c.Stderr, &stderrTail)
	}
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return commandError(err, c, strings.TrimSpace(stderrTail.String()))
	}
	return nil
}

// Output executes the command and returns its captured standard output.
func (r *Runner) Output(ctx context.Context, c ports.Command) ([]byte, error) {
	if len(c.Args) == 0 {
		return nil, zerr.New("empty command")
	}

	cmd := exec.CommandContext(ctx, c.Args[0], c.Args[1:]...) //nolint:gosec // argv is built by the caller
	cmd.Dir = c.Dir

	out, err := cmd.Output()
	if err != nil {
		stderr := ""
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr = strings.TrimSpace(string(exitErr.Stderr))
		}
		return nil, commandError(err, c, stderr)
	}
	return out, nil
}

func commandError(err error, c ports.Command, stderr string) error {
	exitCode := -1 // unknown or signal
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	failed := zerr.With(domain.ErrCommandFailed, "command", strings.Join(c.Args, " "))
	failed = zerr.With(failed, "exit_code", exitCode)
	if stderr != "" {
		failed = zerr.With(failed, "stderr", stderr)
	}
	return errors.Join(failed, err)
}

type logWriter struct {
	logger ports.Logger
}

// Write forwards each full line to the logger. Partial lines are passed
// through as-is; the tools invoked here emit line-buffered output.
func (w *logWriter) Write(p []byte) (int, error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		w.logger.Info(line)
	}
	return len(p), nil
}
