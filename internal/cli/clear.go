package cli

import (
	"github.com/spf13/cobra"

	"worksets.dev/worksets/internal/actions"
	"worksets.dev/worksets/internal/runtime"
)

// newClearCmd creates the clear command
func newClearCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all saved working sets (irreversible)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			return actions.ClearAction(ctx, actions.ClearOptions{Force: force})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}
