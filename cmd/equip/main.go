// Package main is the entry point for the equip bundling companion.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/equip/cmd/equip/commands"
	"go.trai.ch/equip/internal/app"
	_ "go.trai.ch/equip/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// Flush the recording session on every exit path.
	defer func() { _ = components.Tracer.Close() }()

	// 2. Interface - CLI
	cli := commands.New(components.App)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		// %+v renders the structured error report including metadata such
		// as available_binaries or exit_code.
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		return 1
	}
	return 0
}
