package cli

import (
	"github.com/spf13/cobra"

	"repokit.dev/repokit/internal/actions"
	"repokit.dev/repokit/internal/cli/helpers"
	"repokit.dev/repokit/internal/runtime"
)

// newReposListCmd creates the repos list command
func newReposListCmd() *cobra.Command {
	var (
		verbose bool
		auth    authFlags
		filters filterFlags
	)

	cmd := &cobra.Command{
		Use:   "list <target>",
		Short: "Audit merge settings across an organization, user or repository",
		Long: `Audit how each repository builds squash and merge commit messages.

The target is an organization, a user, an owner/repo pair, or "." for the
repository behind the current directory. Archived repositories and forks
are skipped unless included explicitly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.ListReposAction(ctx, actions.ListReposOptions{
					Target:  args[0],
					Verbose: verbose,
					Filters: filters.options(),
					Auth:    auth.options(),
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show the full settings table instead of the summary")
	auth.register(cmd)
	filters.register(cmd)

	return cmd
}
