package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "repokit",
		Short: "Repokit audits and updates repository settings across a GitHub organization",
		Long: `Repokit audits and updates repository settings across a GitHub organization.

It reports how each repository builds squash and merge commit messages and
can move every repository to a standard configuration in bulk.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(newReposCmd())
	rootCmd.AddCommand(newDoctorCmd())

	return rootCmd
}
