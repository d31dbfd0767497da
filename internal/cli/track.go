package cli

import (
	"github.com/spf13/cobra"

	"worksets.dev/worksets/internal/actions"
	"worksets.dev/worksets/internal/runtime"
)

// newTrackCmd creates the track command
func newTrackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "track <path>...",
		Short: "Mark files as open (the integration point for editors and hooks)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			return actions.TrackAction(ctx, actions.TrackOptions{Paths: args})
		},
	}
}

// newUntrackCmd creates the untrack command
func newUntrackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "untrack <path>...",
		Short: "Mark files as closed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			return actions.UntrackAction(ctx, actions.TrackOptions{Paths: args})
		},
	}
}
