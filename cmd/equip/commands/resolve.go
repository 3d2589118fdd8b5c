package commands

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/equip/internal/core/domain"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the extern crate name of every eligible dependency edge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			report, err := c.app.Resolve(cmd.Context(), cwd, selectFlags(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "bin target: %s (%s)\n", report.BinTarget, report.SrcPath)
			for _, d := range report.Dependencies {
				fmt.Fprintf(out, "%s -> %s (%s)\n", d.ExternName, d.Package, d.LibTarget)
			}

			if len(report.Config.ModuleDependencies) > 0 {
				fmt.Fprintln(out, "declared module dependencies:")
				paths := slices.SortedFunc(
					maps.Keys(report.Config.ModuleDependencies),
					domain.PseudoModulePath.Compare,
				)
				for _, p := range paths {
					targets := report.Config.ModuleDependencies[p]
					names := make([]string, len(targets))
					for i, t := range targets {
						names[i] = t.String()
					}
					fmt.Fprintf(out, "  %s: %s\n", p, strings.Join(names, ", "))
				}
			}
			return nil
		},
	}
	addSelectFlags(cmd)
	return cmd
}
