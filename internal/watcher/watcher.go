// Package watcher detects branch changes and feeds them to a handler.
//
// Two strategies exist: an fsnotify watch on the repository's HEAD file
// (preferred), and a polling fallback for environments where the watch
// cannot be established. Exactly one strategy is active per session. The
// watcher is bound to a context and stops deterministically when it is
// cancelled.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"worksets.dev/worksets/internal/config"
	workseterrors "worksets.dev/worksets/internal/errors"
	"worksets.dev/worksets/internal/git"
	"worksets.dev/worksets/internal/tui"
)

// BranchChangeHandler receives the newly resolved branch name
type BranchChangeHandler func(ctx context.Context, branch string)

// Watcher drives branch-change detection for one repository.
type Watcher struct {
	RepoRoot string
	Resolver git.Resolver
	Splog    *tui.Splog

	// Strategy forces config.StrategyWatch or config.StrategyPoll.
	// Empty selects the watch with a polling fallback.
	Strategy string

	// PollInterval is the polling fallback interval. Zero uses the default.
	PollInterval time.Duration

	// OnBranchChange is invoked on every detected change. The handler
	// serializes overlapping invocations itself.
	OnBranchChange BranchChangeHandler
}

// Run blocks until ctx is cancelled, dispatching branch changes to the
// handler. It returns nil on cancellation and an error only when no
// detection strategy could be started.
func (w *Watcher) Run(ctx context.Context) error {
	if w.OnBranchChange == nil {
		return fmt.Errorf("no branch-change handler configured")
	}
	interval := w.PollInterval
	if interval <= 0 {
		interval = config.DefaultPollInterval
	}

	switch w.Strategy {
	case config.StrategyPoll:
		w.Splog.Debug("Branch detection: polling every %s", interval)
		return w.poll(ctx, interval)
	case config.StrategyWatch:
		return w.watch(ctx)
	default:
		if err := w.watch(ctx); err != nil && ctx.Err() == nil {
			w.Splog.Warn("Could not watch HEAD (%v); falling back to polling every %s", err, interval)
			return w.poll(ctx, interval)
		}
		return nil
	}
}

// watch observes the git directory for updates to HEAD. Git replaces HEAD
// via rename, so the watch is placed on the containing directory and
// events are filtered to the HEAD path.
func (w *Watcher) watch(ctx context.Context) error {
	headPath, err := git.HeadFilePath(w.RepoRoot)
	if err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(headPath)); err != nil {
		return fmt.Errorf("failed to watch git directory: %w", err)
	}

	w.Splog.Debug("Branch detection: watching %s", headPath)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return fmt.Errorf("watch channel closed")
			}
			if event.Name != headPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.dispatch(ctx)
		case err, ok := <-fsw.Errors:
			if !ok {
				return fmt.Errorf("watch channel closed")
			}
			w.Splog.Warn("Watch error: %v", err)
		}
	}
}

// poll re-resolves the branch on a fixed interval
func (w *Watcher) poll(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.dispatch(ctx)
		}
	}
}

// dispatch resolves the current branch and hands it to the handler.
// Resolution failures (mid-rebase detached HEAD, transient lock contention)
// are expected and only logged at debug level.
func (w *Watcher) dispatch(ctx context.Context) {
	branch, err := w.Resolver.CurrentBranch(ctx)
	if err != nil {
		if errors.Is(err, workseterrors.ErrNoBranch) {
			w.Splog.Debug("Branch resolution failed: %v", err)
			return
		}
		w.Splog.Warn("Branch resolution failed: %v", err)
		return
	}
	w.OnBranchChange(ctx, branch)
}
