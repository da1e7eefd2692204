// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/trufflesuite/chisel/internal/output"
	"github.com/trufflesuite/chisel/internal/version"
)

// NewRootCmd creates the chisel root command.
func NewRootCmd() *cobra.Command {
	var flagVerbose bool

	root := &cobra.Command{
		Use:   "chisel",
		Short: "Workspace package scaffolder",
		Long: `chisel scaffolds new packages inside the monorepo's packages area.

It validates the proposed package name, derives the package manifest and
companion files from the workspace root (LICENSE, root manifest defaults,
style config), and writes the new package directory in one shot.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			output.SetupLogging(flagVerbose)

			info := version.GetInfo()
			output.Debug("chisel started", "version", info.Version, "commit", info.GitCommit)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "increase output verbosity")

	root.AddCommand(NewCreateCmd())
	root.AddCommand(NewVersionCmd())

	return root
}
