package cli

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"worksets.dev/worksets/internal/actions"
	"worksets.dev/worksets/internal/config"
	"worksets.dev/worksets/internal/runtime"
)

// newWatchCmd creates the watch command
func newWatchCmd() *cobra.Command {
	var (
		poll     bool
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch for branch changes and save/restore working sets automatically",
		Long: `Watch for branch changes and save/restore working sets automatically.

By default the repository's HEAD file is watched for changes; when watching
is unavailable the current branch is polled instead. Runs until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rctx, err := runtime.GetContext()
			if err != nil {
				return err
			}

			opts := actions.WatchOptions{PollInterval: interval}
			if poll {
				opts.Strategy = config.StrategyPoll
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return actions.WatchAction(ctx, rctx, opts)
		},
	}

	cmd.Flags().BoolVar(&poll, "poll", false, "Force polling instead of watching HEAD")
	cmd.Flags().DurationVar(&interval, "interval", 0, "Polling interval (default 5s)")

	return cmd
}
