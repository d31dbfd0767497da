package actions_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"worksets.dev/worksets/internal/actions"
	"worksets.dev/worksets/internal/config"
	"worksets.dev/worksets/internal/runtime"
	"worksets.dev/worksets/testhelpers"
)

func TestWatchActionSavesOnBranchSwitch(t *testing.T) {
	t.Setenv("WORKSETS_NO_NOTIFY", "1")

	scene := testhelpers.NewSceneWithCommit(t)

	// "true" accepts any argument and succeeds, standing in for an editor
	open := "true {path}"
	require.NoError(t, config.SaveRepoConfig(scene.Dir, &config.RepoConfig{
		EditorOpenCommand: &open,
	}))

	rctx, err := runtime.NewContextForRepo(scene.Dir)
	require.NoError(t, err)
	rctx.Splog.SetQuiet(true)

	require.NoError(t, rctx.Tracker.TrackOpen(filepath.Join(scene.Dir, "initial.txt")))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- actions.WatchAction(ctx, rctx, actions.WatchOptions{
			Strategy:     config.StrategyPoll,
			PollInterval: 50 * time.Millisecond,
		})
	}()

	require.NoError(t, scene.Repo.CheckoutNewBranch("feature"))

	// Wait for the poll loop to pick up the switch and save main's set
	require.Eventually(t, func() bool {
		bs, err := rctx.Store.GetBranchState("main")
		return err == nil && bs != nil && len(bs.Files) == 1
	}, 10*time.Second, 50*time.Millisecond, "main's working set was never saved")

	require.Equal(t, "feature", rctx.Tracker.LastObservedBranch())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch action did not stop on cancellation")
	}
}
