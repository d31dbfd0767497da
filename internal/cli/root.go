// Package cli wires the worksets command surface with cobra.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "worksets",
		Short: "Worksets remembers which files you had open on each Git branch",
		Long: `Worksets remembers which files you had open on each Git branch and
reopens them when you switch back.

Feed open/close events with 'worksets track' and 'worksets untrack' (from an
editor plugin or shell hook), then run 'worksets watch' to save and restore
working sets automatically on every branch switch.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("worksets {{.Version}} (%s, built %s)\n", commit, date))

	// Add subcommands
	rootCmd.AddCommand(newSaveCmd())
	rootCmd.AddCommand(newRestoreCmd())
	rootCmd.AddCommand(newFilesCmd())
	rootCmd.AddCommand(newClearCmd())
	rootCmd.AddCommand(newTrackCmd())
	rootCmd.AddCommand(newUntrackCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newStatusCmd())

	return rootCmd
}
