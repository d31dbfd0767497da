package actions

import (
	"worksets.dev/worksets/internal/runtime"
	"worksets.dev/worksets/internal/tui"
)

// FilesAction dumps the currently tracked open-file set
func FilesAction(ctx *runtime.Context) error {
	files := ctx.Tracker.OpenFiles()
	if len(files) == 0 {
		ctx.Splog.Info("No open files tracked")
		return nil
	}

	ctx.Splog.Info("%d open file(s) tracked:", len(files))
	for _, f := range files {
		ctx.Splog.Info("  %s", tui.ColorDim(f))
	}
	return nil
}
