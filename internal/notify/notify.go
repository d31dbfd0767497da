// Package notify provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notify

import (
	"fmt"
	"os"

	"github.com/gen2brain/beeep"
)

// Enabled reports whether desktop notifications should be sent.
// WORKSETS_NO_NOTIFY suppresses them, which tests and CI rely on.
func Enabled() bool {
	return os.Getenv("WORKSETS_NO_NOTIFY") == ""
}

// Send sends a desktop notification with the given title and message.
// Failures are returned but callers treat them as best-effort.
func Send(title, message string) error {
	if !Enabled() {
		return nil
	}
	// Use empty string for icon - beeep handles platform defaults
	return beeep.Notify(title, message, "")
}

// BranchRestored sends a notification that a branch's working set was restored.
func BranchRestored(branch string, opened int) error {
	return Send("worksets", fmt.Sprintf("Switched to '%s': reopened %d file(s)", branch, opened))
}

// BranchSwitched sends a notification that a branch with nothing saved was entered.
func BranchSwitched(branch string) error {
	return Send("worksets", fmt.Sprintf("Switched to '%s': no saved working set", branch))
}
