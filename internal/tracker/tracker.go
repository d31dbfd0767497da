// Package tracker owns the mapping from branch name to open-file working
// set, and drives save/restore when the branch changes.
package tracker

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"

	"worksets.dev/worksets/internal/editor"
	workseterrors "worksets.dev/worksets/internal/errors"
	"worksets.dev/worksets/internal/git"
	"worksets.dev/worksets/internal/state"
	"worksets.dev/worksets/internal/tui"
	"worksets.dev/worksets/internal/utils"
)

// Options tunes tracker behavior.
type Options struct {
	// RepoRoot scopes the hidden-segment filter: for files inside the
	// repository only the repo-relative part is checked, so a repository
	// living under a dotted directory is not filtered wholesale.
	RepoRoot string

	// MaxListed caps how many file names a save notification lists
	MaxListed int
}

// Tracker is the single owner of currentBranch and the open-file set.
// One instance is constructed at startup and shared by the command surface
// and the watcher; all branch-change handling is serialized through it.
type Tracker struct {
	resolver git.Resolver
	store    state.Store
	host     editor.Host
	splog    *tui.Splog
	opts     Options

	mu            sync.Mutex
	currentBranch string
	openFiles     []string

	// Busy-guard: at most one branch-change cycle in flight, plus at most
	// one pending follow-up. Overlapping triggers collapse into the
	// pending slot.
	switching bool
	pending   string
}

// NewTracker creates a tracker. The open-file set is loaded from the store
// so it survives process restarts (the command surface is short-lived).
func NewTracker(resolver git.Resolver, store state.Store, host editor.Host, splog *tui.Splog, opts Options) (*Tracker, error) {
	openFiles, err := store.GetOpenFiles()
	if err != nil {
		return nil, err
	}

	return &Tracker{
		resolver:  resolver,
		store:     store,
		host:      host,
		splog:     splog,
		opts:      opts,
		openFiles: utils.DedupeStrings(openFiles),
	}, nil
}

// CurrentBranch returns the branch HEAD points at, delegating to the
// resolver. Resolution failures wrap ErrNoBranch; callers surface the
// error and take no further action.
func (t *Tracker) CurrentBranch(ctx context.Context) (string, error) {
	return t.resolver.CurrentBranch(ctx)
}

// LastObservedBranch returns the branch recorded by the last completed
// branch-change cycle, or empty when none has run.
func (t *Tracker) LastObservedBranch() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.currentBranch
}

// SetObservedBranch records the starting branch without running a cycle.
// The watcher calls this once at startup.
func (t *Tracker) SetObservedBranch(branch string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.currentBranch = branch
}

// reloadOpenFiles refreshes the in-memory open set from the store and
// returns a copy. Track events may come from other processes (an editor
// hook running 'worksets track' while 'worksets watch' is running), so the
// store, which every track call writes through to, is the source of truth.
func (t *Tracker) reloadOpenFiles() ([]string, error) {
	stored, err := t.store.GetOpenFiles()
	if err != nil {
		return nil, err
	}
	stored = utils.DedupeStrings(stored)

	t.mu.Lock()
	t.openFiles = stored
	t.mu.Unlock()

	files := make([]string, len(stored))
	copy(files, stored)
	return files, nil
}

// OpenFiles returns a copy of the tracked open-file set
func (t *Tracker) OpenFiles() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	files := make([]string, len(t.openFiles))
	copy(files, t.openFiles)
	return files
}

// TrackOpen adds a path to the open-file set. Hidden paths are ignored and
// re-adding a tracked path is a no-op.
func (t *Tracker) TrackOpen(path string) error {
	abs, ok := t.normalize(path)
	if !ok {
		return nil
	}

	t.mu.Lock()
	if utils.ContainsString(t.openFiles, abs) {
		t.mu.Unlock()
		return nil
	}
	t.openFiles = append(t.openFiles, abs)
	files := make([]string, len(t.openFiles))
	copy(files, t.openFiles)
	t.mu.Unlock()

	return t.store.SetOpenFiles(files)
}

// TrackClose removes a path from the open-file set. Removing an untracked
// path is a no-op.
func (t *Tracker) TrackClose(path string) error {
	abs, ok := t.normalize(path)
	if !ok {
		return nil
	}

	t.mu.Lock()
	if !utils.ContainsString(t.openFiles, abs) {
		t.mu.Unlock()
		return nil
	}
	t.openFiles = utils.RemoveString(t.openFiles, abs)
	files := make([]string, len(t.openFiles))
	copy(files, t.openFiles)
	t.mu.Unlock()

	return t.store.SetOpenFiles(files)
}

// normalize makes a path absolute and applies the hidden-segment filter.
// The second return value is false when the path must not be tracked.
func (t *Tracker) normalize(path string) (string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}

	check := abs
	if t.opts.RepoRoot != "" {
		if rel, err := filepath.Rel(t.opts.RepoRoot, abs); err == nil && !strings.HasPrefix(rel, "..") {
			check = rel
		}
	}
	if utils.HasHiddenSegment(check) {
		return "", false
	}
	return abs, true
}

// SaveState persists the open-file set for branch. An empty open set
// removes any existing entry: absence, not an empty list, means "nothing
// saved".
func (t *Tracker) SaveState(branch string) error {
	if branch == "" {
		return workseterrors.ErrEmptyBranchName
	}

	files, err := t.reloadOpenFiles()
	if err != nil {
		return err
	}

	if len(files) == 0 {
		if err := t.store.DeleteBranchState(branch); err != nil {
			return err
		}
		t.splog.Info("No open files; cleared saved state for branch '%s'", branch)
		return nil
	}

	if err := t.store.PutBranchState(branch, &state.BranchState{Files: files}); err != nil {
		return err
	}

	t.splog.Info("Saved %d file(s) for branch '%s'", len(files), branch)
	listed, cut := utils.TruncateList(files, t.opts.MaxListed)
	for _, f := range listed {
		t.splog.Info("  %s", tui.ColorDim(f))
	}
	if cut > 0 {
		t.splog.Tip("...and %d more. Run 'worksets files' for the full list.", cut)
	}
	return nil
}

// RestoreState reopens the saved working set for branch. It returns the
// number of files actually opened. A branch with nothing saved returns a
// NothingSavedError; per-file open failures are reported as warnings and
// do not abort the loop.
func (t *Tracker) RestoreState(ctx context.Context, branch string) (int, error) {
	if branch == "" {
		return 0, workseterrors.ErrEmptyBranchName
	}

	bs, err := t.store.GetBranchState(branch)
	if err != nil {
		return 0, err
	}
	if bs == nil || len(bs.Files) == 0 {
		return 0, workseterrors.NewNothingSavedError(branch)
	}

	if err := t.host.CloseAll(ctx); err != nil {
		t.splog.Warn("Could not close open editors: %v", err)
	}

	var opened []string
	for _, path := range bs.Files {
		if err := t.host.Open(ctx, path); err != nil {
			t.splog.Warn("Could not open %s: %v", path, err)
			continue
		}
		opened = append(opened, path)
	}

	t.mu.Lock()
	t.openFiles = opened
	t.mu.Unlock()
	if err := t.store.SetOpenFiles(opened); err != nil {
		return len(opened), err
	}

	t.splog.Info("Restored %d of %d file(s) for branch '%s'", len(opened), len(bs.Files), branch)
	return len(opened), nil
}

// HandleBranchChange runs the save-then-restore cycle for a branch switch.
// Calling it with the already-observed branch is a no-op. Concurrent
// triggers collapse: while a cycle is in flight, the newest branch name is
// parked in a single pending slot and handled when the cycle completes.
func (t *Tracker) HandleBranchChange(ctx context.Context, newBranch string) error {
	if newBranch == "" {
		return workseterrors.ErrEmptyBranchName
	}

	t.mu.Lock()
	if newBranch == t.currentBranch {
		t.mu.Unlock()
		return nil
	}
	if t.switching {
		t.pending = newBranch
		t.mu.Unlock()
		return nil
	}
	t.switching = true
	t.mu.Unlock()

	branch := newBranch
	for {
		t.switchTo(ctx, branch)

		t.mu.Lock()
		next := t.pending
		t.pending = ""
		if next == "" || next == t.currentBranch {
			t.switching = false
			t.mu.Unlock()
			return nil
		}
		t.mu.Unlock()
		branch = next
	}
}

// switchTo performs one save-then-restore cycle. It never fails fatally:
// save and restore errors are surfaced and the cycle continues.
func (t *Tracker) switchTo(ctx context.Context, branch string) {
	t.mu.Lock()
	outgoing := t.currentBranch
	t.mu.Unlock()

	if outgoing != "" {
		if err := t.SaveState(outgoing); err != nil {
			t.splog.Error("Could not save state for branch '%s': %v", outgoing, err)
		}
	}

	t.mu.Lock()
	t.currentBranch = branch
	t.mu.Unlock()

	if _, err := t.RestoreState(ctx, branch); err != nil {
		if errors.Is(err, workseterrors.ErrNothingSaved) {
			t.splog.Info("No saved state for branch '%s'", branch)
		} else {
			t.splog.Error("Could not restore state for branch '%s': %v", branch, err)
		}
	}
}

// ClearAll wipes all persisted branch state and resets the open-file set.
// Irreversible; used for troubleshooting.
func (t *Tracker) ClearAll() error {
	t.mu.Lock()
	t.openFiles = nil
	t.mu.Unlock()

	return t.store.ClearAll()
}
