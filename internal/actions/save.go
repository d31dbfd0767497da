package actions

import (
	"context"
	"errors"

	workseterrors "worksets.dev/worksets/internal/errors"
	"worksets.dev/worksets/internal/runtime"
)

// SaveAction saves the current branch's open-file set
func SaveAction(ctx *runtime.Context) error {
	branch, err := ctx.Tracker.CurrentBranch(context.Background())
	if err != nil {
		if errors.Is(err, workseterrors.ErrNoBranch) {
			ctx.Splog.Error("No branch detected; nothing saved")
			return nil
		}
		return err
	}

	return ctx.Tracker.SaveState(branch)
}
