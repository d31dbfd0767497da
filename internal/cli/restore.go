package cli

import (
	"github.com/spf13/cobra"

	"worksets.dev/worksets/internal/actions"
	"worksets.dev/worksets/internal/runtime"
)

// newRestoreCmd creates the restore command
func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore [branch]",
		Short: "Reopen the saved working set for a branch (default: current branch)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			opts := actions.RestoreOptions{}
			if len(args) > 0 {
				opts.BranchName = args[0]
			}

			return actions.RestoreAction(ctx, opts)
		},
	}
}
