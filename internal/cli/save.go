package cli

import (
	"github.com/spf13/cobra"

	"worksets.dev/worksets/internal/actions"
	"worksets.dev/worksets/internal/runtime"
)

// newSaveCmd creates the save command
func newSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Save the current branch's open-file set",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			return actions.SaveAction(ctx)
		},
	}
}
