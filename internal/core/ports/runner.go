package ports

import (
	"context"
	"io"
)

// Command describes one external tool invocation. Args holds the full argv
// including the program name; Dir is the explicit working directory.
type Command struct {
	Args []string
	Dir  string
	// Stdout and Stderr optionally receive the streamed tool output. When
	// nil the runner routes output to its logger.
	Stdout io.Writer
	Stderr io.Writer
}

// Runner executes external tools. Invocations block until the subprocess
// exits; no timeout is imposed here, callers may layer one via ctx.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes the command and fails with ErrCommandFailed on a
	// non-zero exit or launch failure.
	Run(ctx context.Context, cmd Command) error

	// Output executes the command and returns its captured standard output.
	Output(ctx context.Context, cmd Command) ([]byte, error)
}
