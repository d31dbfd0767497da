package actions

import (
	"worksets.dev/worksets/internal/runtime"
)

// TrackOptions contains options for the track and untrack commands
type TrackOptions struct {
	Paths []string
}

// TrackAction marks files as open. This is the integration point for
// editors and shell hooks to feed open events into the tracker.
func TrackAction(ctx *runtime.Context, opts TrackOptions) error {
	for _, path := range opts.Paths {
		if err := ctx.Tracker.TrackOpen(path); err != nil {
			return err
		}
	}
	ctx.Splog.Debug("Tracking %d open file(s)", len(ctx.Tracker.OpenFiles()))
	return nil
}

// UntrackAction marks files as closed
func UntrackAction(ctx *runtime.Context, opts TrackOptions) error {
	for _, path := range opts.Paths {
		if err := ctx.Tracker.TrackClose(path); err != nil {
			return err
		}
	}
	ctx.Splog.Debug("Tracking %d open file(s)", len(ctx.Tracker.OpenFiles()))
	return nil
}
