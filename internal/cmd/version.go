package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trufflesuite/chisel/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(c *cobra.Command, _ []string) {
			fmt.Fprintln(c.OutOrStdout(), version.GetInfo().String())
		},
	}
}
