package cli

import (
	"github.com/spf13/cobra"

	"worksets.dev/worksets/internal/actions"
	"worksets.dev/worksets/internal/runtime"
)

// newFilesCmd creates the files command
func newFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "files",
		Short: "List the currently tracked open files",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			return actions.FilesAction(ctx)
		},
	}
}
