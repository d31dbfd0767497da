package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"worksets.dev/worksets/internal/config"
	"worksets.dev/worksets/testhelpers"
)

func TestGetRepoConfig(t *testing.T) {
	t.Run("returns defaults when no config exists", func(t *testing.T) {
		scene := testhelpers.NewSceneWithCommit(t)

		cfg, err := config.GetRepoConfig(scene.Dir)
		require.NoError(t, err)
		require.Empty(t, cfg.Strategy())
		require.Equal(t, config.DefaultPollInterval, cfg.PollInterval())
		require.Equal(t, config.DefaultMaxListedFiles, cfg.MaxListed())
		require.True(t, cfg.NotificationsEnabled())
	})

	t.Run("round-trips saved values", func(t *testing.T) {
		scene := testhelpers.NewSceneWithCommit(t)

		open := "code -g {path}"
		strategy := config.StrategyPoll
		interval := 2
		notify := false
		err := config.SaveRepoConfig(scene.Dir, &config.RepoConfig{
			EditorOpenCommand:    &open,
			DetectionStrategy:    &strategy,
			PollIntervalSeconds:  &interval,
			DesktopNotifications: &notify,
		})
		require.NoError(t, err)

		cfg, err := config.GetRepoConfig(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, open, cfg.OpenCommand())
		require.Equal(t, config.StrategyPoll, cfg.Strategy())
		require.Equal(t, 2*time.Second, cfg.PollInterval())
		require.False(t, cfg.NotificationsEnabled())
	})
}

func TestOpenCommandFallsBackToEditorEnv(t *testing.T) {
	scene := testhelpers.NewSceneWithCommit(t)
	t.Setenv("EDITOR", "vim")

	cfg, err := config.GetRepoConfig(scene.Dir)
	require.NoError(t, err)
	require.Equal(t, "vim {path}", cfg.OpenCommand())
}
