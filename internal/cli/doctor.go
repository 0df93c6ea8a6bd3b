package cli

import (
	"github.com/spf13/cobra"

	"repokit.dev/repokit/internal/actions"
	"repokit.dev/repokit/internal/cli/helpers"
	"repokit.dev/repokit/internal/runtime"
)

// newDoctorCmd creates the doctor command
func newDoctorCmd() *cobra.Command {
	var auth authFlags

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose common issues with your repokit setup",
		Long: `Run diagnostic checks on your repokit environment.

The doctor command checks:
  - Environment: GitHub CLI, token resolution, and API connectivity
  - Configuration: config file, endpoint overrides, and exclude list
  - Repository: whether the current directory maps to a GitHub repository`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.DoctorAction(ctx, actions.DoctorOptions{
					Auth: auth.options(),
				})
			})
		},
	}

	auth.register(cmd)

	return cmd
}
