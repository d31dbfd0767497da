// Package errors provides sentinel errors and custom error types for the worksets application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNoBranch indicates that the current branch could not be resolved
	// (no repository, detached HEAD, or a failed git invocation).
	ErrNoBranch = errors.New("no branch detected")

	// ErrNothingSaved indicates that a branch has no persisted working set
	ErrNothingSaved = errors.New("nothing saved")

	// ErrEmptyBranchName indicates that a branch name was required but empty
	ErrEmptyBranchName = errors.New("branch name must not be empty")

	// ErrNoOpenCommand indicates that no editor open command is configured
	ErrNoOpenCommand = errors.New("no editor open command configured")
)

// NothingSavedError reports that a branch has no persisted working set
type NothingSavedError struct {
	BranchName string
}

func (e *NothingSavedError) Error() string {
	return fmt.Sprintf("no saved state for branch '%s'", e.BranchName)
}

// Is returns true if the target error is ErrNothingSaved
func (e *NothingSavedError) Is(target error) bool {
	return target == ErrNothingSaved
}

// NewNothingSavedError creates a new NothingSavedError
func NewNothingSavedError(branchName string) *NothingSavedError {
	return &NothingSavedError{BranchName: branchName}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// EditorCommandError represents a failure running the configured editor command
type EditorCommandError struct {
	Command string
	Path    string
	Stderr  string
	Err     error
}

func (e *EditorCommandError) Error() string {
	msg := fmt.Sprintf("editor command failed: %s", e.Command)
	if e.Path != "" {
		msg += fmt.Sprintf(" (opening %s)", e.Path)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *EditorCommandError) Unwrap() error {
	return e.Err
}

// NewEditorCommandError creates a new EditorCommandError
func NewEditorCommandError(command, path, stderr string, err error) *EditorCommandError {
	return &EditorCommandError{
		Command: command,
		Path:    path,
		Stderr:  stderr,
		Err:     err,
	}
}
