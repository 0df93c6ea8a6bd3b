package cli

import (
	"github.com/spf13/cobra"

	"repokit.dev/repokit/internal/actions"
	"repokit.dev/repokit/internal/cli/helpers"
	"repokit.dev/repokit/internal/runtime"
)

// newReposFixSquashCmd creates the repos fix-squash command
func newReposFixSquashCmd() *cobra.Command {
	var (
		apply   bool
		yes     bool
		auth    authFlags
		filters filterFlags
	)

	cmd := &cobra.Command{
		Use:   "fix-squash <target>",
		Short: "Set squash merges to use the PR title and body",
		Long: `Move every repository with squash merging enabled to squash commit
titles from the PR title and messages from the PR body.

This is a convenience command equivalent to:
  repokit repos update-merge <target> --squash-title PR_TITLE --squash-message PR_BODY

Runs as a dry run unless --apply is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.FixSquashAction(ctx, actions.FixSquashOptions{
					Target:  args[0],
					Apply:   apply,
					Yes:     yes,
					Filters: filters.options(),
					Auth:    auth.options(),
				})
			})
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "Make the changes instead of previewing them")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	auth.register(cmd)
	filters.register(cmd)

	return cmd
}
