package helpers

import (
	"github.com/spf13/cobra"

	"repokit.dev/repokit/internal/runtime"
)

// Run is a helper that provides a runtime context to a command's
// execution function and releases it afterwards
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.GetContext(cmd.Context())
	if err != nil {
		return err
	}
	defer ctx.Close()
	return fn(ctx)
}
