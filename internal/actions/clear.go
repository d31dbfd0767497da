package actions

import (
	"github.com/AlecAivazis/survey/v2"

	"worksets.dev/worksets/internal/runtime"
	"worksets.dev/worksets/internal/utils"
)

// ClearOptions contains options for the clear command
type ClearOptions struct {
	// Force skips the confirmation prompt
	Force bool
}

// ClearAction wipes all persisted branch state. Irreversible.
func ClearAction(ctx *runtime.Context, opts ClearOptions) error {
	branches, err := ctx.Store.ListBranches()
	if err != nil {
		return err
	}
	if len(branches) == 0 && len(ctx.Tracker.OpenFiles()) == 0 {
		ctx.Splog.Info("Nothing to clear")
		return nil
	}

	if !opts.Force {
		if !utils.IsInteractive() {
			ctx.Splog.Error("Refusing to clear without confirmation; re-run with --force")
			return nil
		}

		confirmed := false
		prompt := &survey.Confirm{
			Message: "Delete all saved working sets? This cannot be undone.",
			Default: false,
		}
		if err := survey.AskOne(prompt, &confirmed); err != nil || !confirmed {
			ctx.Splog.Info("Aborted")
			return nil
		}
	}

	if err := ctx.Tracker.ClearAll(); err != nil {
		return err
	}

	ctx.Splog.Info("Cleared saved state for %d branch(es)", len(branches))
	return nil
}
