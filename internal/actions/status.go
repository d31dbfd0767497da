package actions

import (
	"context"
	"errors"
	"fmt"

	workseterrors "worksets.dev/worksets/internal/errors"
	"worksets.dev/worksets/internal/runtime"
	"worksets.dev/worksets/internal/tui"
)

// StatusAction prints a diagnostic summary: current branch, tracked open
// files, and every branch with saved state.
func StatusAction(ctx *runtime.Context) error {
	branch, err := ctx.Tracker.CurrentBranch(context.Background())
	switch {
	case errors.Is(err, workseterrors.ErrNoBranch):
		ctx.Splog.Warn("No branch detected")
	case err != nil:
		return err
	default:
		ctx.Splog.Info("On branch %s", tui.ColorCyan(branch))
	}

	ctx.Splog.Info("%d open file(s) tracked", len(ctx.Tracker.OpenFiles()))

	branches, err := ctx.Store.ListBranches()
	if err != nil {
		return err
	}
	if len(branches) == 0 {
		ctx.Splog.Info("No saved working sets")
		return nil
	}

	ctx.Splog.Info("Saved working sets:")
	for _, b := range branches {
		bs, err := ctx.Store.GetBranchState(b)
		if err != nil {
			return err
		}
		count := 0
		if bs != nil {
			count = len(bs.Files)
		}
		marker := "  "
		if b == branch {
			marker = "* "
		}
		ctx.Splog.Info("%s%s %s", marker, tui.ColorGreen(b), tui.ColorDim(formatFileCount(count)))
	}
	return nil
}

func formatFileCount(count int) string {
	if count == 1 {
		return "(1 file)"
	}
	return fmt.Sprintf("(%d files)", count)
}
