package cli

import (
	"github.com/spf13/cobra"

	"repokit.dev/repokit/internal/actions"
	"repokit.dev/repokit/internal/cli/helpers"
	"repokit.dev/repokit/internal/runtime"
	"repokit.dev/repokit/internal/settings"
)

// newReposUpdateMergeCmd creates the repos update-merge command
func newReposUpdateMergeCmd() *cobra.Command {
	var (
		squashTitle   string
		squashMessage string
		mergeTitle    string
		mergeMessage  string
		apply         bool
		yes           bool
		auth          authFlags
		filters       filterFlags
	)

	cmd := &cobra.Command{
		Use:   "update-merge <target>",
		Short: "Update merge commit settings across repositories",
		Long: `Update how repositories build squash and merge commit messages.

At least one setting flag is required. Settings for a merge method a
repository has disabled are left alone.

Common patterns:
  - Squash to PR title + body: --squash-title PR_TITLE --squash-message PR_BODY
  - Merge to PR title: --merge-title PR_TITLE --merge-message PR_TITLE

Runs as a dry run unless --apply is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desired, err := parseDesiredSettings(squashTitle, squashMessage, mergeTitle, mergeMessage)
			if err != nil {
				return err
			}

			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.UpdateMergeAction(ctx, actions.UpdateMergeOptions{
					Target:  args[0],
					Desired: desired,
					Apply:   apply,
					Yes:     yes,
					Filters: filters.options(),
					Auth:    auth.options(),
				})
			})
		},
	}

	cmd.Flags().StringVar(&squashTitle, "squash-title", "", "Squash commit title source (PR_TITLE or COMMIT_OR_PR_TITLE)")
	cmd.Flags().StringVar(&squashMessage, "squash-message", "", "Squash commit message source (PR_BODY, COMMIT_MESSAGES or BLANK)")
	cmd.Flags().StringVar(&mergeTitle, "merge-title", "", "Merge commit title source (PR_TITLE or MERGE_MESSAGE)")
	cmd.Flags().StringVar(&mergeMessage, "merge-message", "", "Merge commit message source (PR_TITLE, PR_BODY or BLANK)")
	cmd.Flags().BoolVar(&apply, "apply", false, "Make the changes instead of previewing them")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	auth.register(cmd)
	filters.register(cmd)

	_ = cmd.RegisterFlagCompletionFunc("squash-title", helpers.CompleteValues("PR_TITLE", "COMMIT_OR_PR_TITLE"))
	_ = cmd.RegisterFlagCompletionFunc("squash-message", helpers.CompleteValues("PR_BODY", "COMMIT_MESSAGES", "BLANK"))
	_ = cmd.RegisterFlagCompletionFunc("merge-title", helpers.CompleteValues("PR_TITLE", "MERGE_MESSAGE"))
	_ = cmd.RegisterFlagCompletionFunc("merge-message", helpers.CompleteValues("PR_TITLE", "PR_BODY", "BLANK"))

	return cmd
}

// parseDesiredSettings validates the requested setting values. Flags
// that were not given stay nil so the existing values are left alone.
func parseDesiredSettings(squashTitle, squashMessage, mergeTitle, mergeMessage string) (settings.DesiredSettings, error) {
	var desired settings.DesiredSettings

	if squashTitle != "" {
		value, err := settings.ParseSquashTitle(squashTitle)
		if err != nil {
			return settings.DesiredSettings{}, err
		}
		desired.SquashTitle = &value
	}
	if squashMessage != "" {
		value, err := settings.ParseSquashMessage(squashMessage)
		if err != nil {
			return settings.DesiredSettings{}, err
		}
		desired.SquashMessage = &value
	}
	if mergeTitle != "" {
		value, err := settings.ParseMergeTitle(mergeTitle)
		if err != nil {
			return settings.DesiredSettings{}, err
		}
		desired.MergeTitle = &value
	}
	if mergeMessage != "" {
		value, err := settings.ParseMergeMessage(mergeMessage)
		if err != nil {
			return settings.DesiredSettings{}, err
		}
		desired.MergeMessage = &value
	}

	return desired, nil
}
