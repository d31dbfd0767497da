package actions

import (
	"context"
	"errors"

	workseterrors "worksets.dev/worksets/internal/errors"
	"worksets.dev/worksets/internal/runtime"
)

// RestoreOptions contains options for the restore command
type RestoreOptions struct {
	// BranchName restores a specific branch's set; empty means the current branch
	BranchName string
}

// RestoreAction reopens the saved working set for a branch
func RestoreAction(ctx *runtime.Context, opts RestoreOptions) error {
	branch := opts.BranchName
	if branch == "" {
		resolved, err := ctx.Tracker.CurrentBranch(context.Background())
		if err != nil {
			if errors.Is(err, workseterrors.ErrNoBranch) {
				ctx.Splog.Error("No branch detected; nothing restored")
				return nil
			}
			return err
		}
		branch = resolved
	}

	_, err := ctx.Tracker.RestoreState(context.Background(), branch)
	if err != nil {
		if errors.Is(err, workseterrors.ErrNothingSaved) {
			ctx.Splog.Info("No saved state for branch '%s'", branch)
			return nil
		}
		return err
	}
	return nil
}
