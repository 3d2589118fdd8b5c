package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify FILE",
		Short: "Type-check a bundled source file offline against the pinned dependency versions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			res, err := c.app.Verify(cmd.Context(), cwd, selectFlags(cmd), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "verified %s (fingerprint %016x, scratch package %s)\n",
				args[0], res.Fingerprint, res.ScratchName)
			return nil
		},
	}
	addSelectFlags(cmd)
	return cmd
}
