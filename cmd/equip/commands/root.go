// Package commands implements the CLI commands for the equip tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/equip/internal/app"
	"go.trai.ch/equip/internal/build"
)

// CLI represents the command line interface for equip.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "equip",
		Short:         "Resolve extern crate names and verify bundled sources for cargo projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newVerifyCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut sets the output writer of the root command. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}

func selectFlags(cmd *cobra.Command) app.SelectOptions {
	bin, _ := cmd.Flags().GetString("bin")
	src, _ := cmd.Flags().GetString("src")
	return app.SelectOptions{Bin: bin, Src: src}
}

func addSelectFlags(cmd *cobra.Command) {
	cmd.Flags().String("bin", "", "Name of the bin target to operate on")
	cmd.Flags().String("src", "", "Path of the bin target's main source file")
}
