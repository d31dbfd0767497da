package cli

import (
	"github.com/spf13/cobra"

	"worksets.dev/worksets/internal/actions"
	"worksets.dev/worksets/internal/runtime"
)

// newStatusCmd creates the status command
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current branch, tracked files, and saved working sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			return actions.StatusAction(ctx)
		},
	}
}
