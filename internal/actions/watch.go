package actions

import (
	"context"
	"errors"
	"time"

	workseterrors "worksets.dev/worksets/internal/errors"
	"worksets.dev/worksets/internal/notify"
	"worksets.dev/worksets/internal/runtime"
	"worksets.dev/worksets/internal/watcher"
)

// WatchOptions contains options for the watch command
type WatchOptions struct {
	// Strategy forces "watch" or "poll"; empty defers to config, then auto
	Strategy string

	// PollInterval overrides the polling interval; zero defers to config
	PollInterval time.Duration
}

// WatchAction runs the branch-change detection loop until ctx is cancelled.
// On every detected switch it saves the outgoing branch's working set and
// restores the incoming one.
func WatchAction(ctx context.Context, rctx *runtime.Context, opts WatchOptions) error {
	// Seed the observed branch so the first detected change has an
	// outgoing branch to save. Failing soft here is fine: the first
	// successful resolution will seed it through HandleBranchChange.
	if branch, err := rctx.Tracker.CurrentBranch(ctx); err == nil {
		rctx.Tracker.SetObservedBranch(branch)
		rctx.Splog.Info("Watching for branch changes on '%s'", branch)
	} else if errors.Is(err, workseterrors.ErrNoBranch) {
		rctx.Splog.Warn("No branch detected yet; waiting for one")
	} else {
		return err
	}

	strategy := opts.Strategy
	if strategy == "" {
		strategy = rctx.Config.Strategy()
	}
	interval := opts.PollInterval
	if interval <= 0 {
		interval = rctx.Config.PollInterval()
	}

	notifications := rctx.Config.NotificationsEnabled()

	w := &watcher.Watcher{
		RepoRoot:     rctx.RepoRoot,
		Resolver:     rctx.Resolver,
		Splog:        rctx.Splog,
		Strategy:     strategy,
		PollInterval: interval,
		OnBranchChange: func(ctx context.Context, branch string) {
			before := rctx.Tracker.LastObservedBranch()
			if err := rctx.Tracker.HandleBranchChange(ctx, branch); err != nil {
				rctx.Splog.Error("Branch change handling failed: %v", err)
				return
			}
			after := rctx.Tracker.LastObservedBranch()
			if !notifications || after == before {
				return
			}
			opened := len(rctx.Tracker.OpenFiles())
			if opened > 0 {
				_ = notify.BranchRestored(after, opened)
			} else {
				_ = notify.BranchSwitched(after)
			}
		},
	}

	return w.Run(ctx)
}
