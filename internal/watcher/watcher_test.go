package watcher_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"worksets.dev/worksets/internal/config"
	"worksets.dev/worksets/internal/git"
	"worksets.dev/worksets/internal/tui"
	"worksets.dev/worksets/internal/watcher"
	"worksets.dev/worksets/testhelpers"
)

func quietSplog() *tui.Splog {
	splog := tui.NewSplog()
	splog.SetQuiet(true)
	return splog
}

// waitForBranch drains changes until the expected branch arrives
func waitForBranch(t *testing.T, changes <-chan string, expected string) {
	t.Helper()
	deadline := time.After(10 * time.Second)
	for {
		select {
		case branch := <-changes:
			if branch == expected {
				return
			}
		case <-deadline:
			t.Fatalf("never observed branch %q", expected)
		}
	}
}

func runWatcher(t *testing.T, w *watcher.Watcher) (<-chan string, context.CancelFunc) {
	t.Helper()

	changes := make(chan string, 64)
	w.OnBranchChange = func(_ context.Context, branch string) {
		changes <- branch
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx)
	}()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("watcher did not stop on cancellation")
		}
	})

	return changes, cancel
}

func TestWatchStrategyDetectsCheckout(t *testing.T) {
	scene := testhelpers.NewSceneWithCommit(t)

	w := &watcher.Watcher{
		RepoRoot: scene.Dir,
		Resolver: git.NewResolver(scene.Dir),
		Splog:    quietSplog(),
		Strategy: config.StrategyWatch,
	}
	changes, _ := runWatcher(t, w)

	// Give the watch a moment to establish before switching branches
	time.Sleep(200 * time.Millisecond)

	require.NoError(t, scene.Repo.CheckoutNewBranch("feature"))
	waitForBranch(t, changes, "feature")

	require.NoError(t, scene.Repo.Checkout("main"))
	waitForBranch(t, changes, "main")
}

func TestPollStrategyDetectsCheckout(t *testing.T) {
	scene := testhelpers.NewSceneWithCommit(t)

	w := &watcher.Watcher{
		RepoRoot:     scene.Dir,
		Resolver:     git.NewResolver(scene.Dir),
		Splog:        quietSplog(),
		Strategy:     config.StrategyPoll,
		PollInterval: 50 * time.Millisecond,
	}
	changes, _ := runWatcher(t, w)

	require.NoError(t, scene.Repo.CheckoutNewBranch("topic"))
	waitForBranch(t, changes, "topic")
}

func TestPollSkipsDetachedHead(t *testing.T) {
	scene := testhelpers.NewSceneWithCommit(t)
	require.NoError(t, scene.Repo.DetachHead())

	w := &watcher.Watcher{
		RepoRoot:     scene.Dir,
		Resolver:     git.NewResolver(scene.Dir),
		Splog:        quietSplog(),
		Strategy:     config.StrategyPoll,
		PollInterval: 20 * time.Millisecond,
	}
	changes, _ := runWatcher(t, w)

	select {
	case branch := <-changes:
		t.Fatalf("unexpected branch change %q while detached", branch)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestForcedWatchFailsOutsideRepository(t *testing.T) {
	w := &watcher.Watcher{
		RepoRoot:       t.TempDir(),
		Resolver:       git.NewResolver(t.TempDir()),
		Splog:          quietSplog(),
		Strategy:       config.StrategyWatch,
		OnBranchChange: func(context.Context, string) {},
	}

	err := w.Run(context.Background())
	require.Error(t, err)
}
