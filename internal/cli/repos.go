package cli

import (
	"github.com/spf13/cobra"
)

// newReposCmd creates the repos command group
func newReposCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repos",
		Short: "Audit and update repository merge settings",
	}

	cmd.AddCommand(newReposListCmd())
	cmd.AddCommand(newReposFixSquashCmd())
	cmd.AddCommand(newReposUpdateMergeCmd())

	return cmd
}
