package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	workseterrors "worksets.dev/worksets/internal/errors"
	"worksets.dev/worksets/internal/git"
	"worksets.dev/worksets/testhelpers"
)

func TestRepoResolver(t *testing.T) {
	t.Run("resolves the checked out branch", func(t *testing.T) {
		scene := testhelpers.NewSceneWithCommit(t)

		resolver := git.NewRepoResolver(scene.Dir)
		branch, err := resolver.CurrentBranch(context.Background())
		require.NoError(t, err)
		require.Equal(t, "main", branch)

		require.NoError(t, scene.Repo.CheckoutNewBranch("feature"))

		branch, err = resolver.CurrentBranch(context.Background())
		require.NoError(t, err)
		require.Equal(t, "feature", branch)
	})

	t.Run("fails soft on detached HEAD", func(t *testing.T) {
		scene := testhelpers.NewSceneWithCommit(t)
		require.NoError(t, scene.Repo.DetachHead())

		resolver := git.NewRepoResolver(scene.Dir)
		_, err := resolver.CurrentBranch(context.Background())
		require.ErrorIs(t, err, workseterrors.ErrNoBranch)
	})

	t.Run("fails soft outside a repository", func(t *testing.T) {
		resolver := git.NewRepoResolver(t.TempDir())
		_, err := resolver.CurrentBranch(context.Background())
		require.ErrorIs(t, err, workseterrors.ErrNoBranch)
	})
}

func TestCommandResolver(t *testing.T) {
	t.Run("resolves the checked out branch", func(t *testing.T) {
		scene := testhelpers.NewSceneWithCommit(t)
		require.NoError(t, scene.Repo.CheckoutNewBranch("topic"))

		resolver := git.NewCommandResolver(scene.Dir)
		branch, err := resolver.CurrentBranch(context.Background())
		require.NoError(t, err)
		require.Equal(t, "topic", branch)
	})

	t.Run("fails soft on detached HEAD", func(t *testing.T) {
		scene := testhelpers.NewSceneWithCommit(t)
		require.NoError(t, scene.Repo.DetachHead())

		resolver := git.NewCommandResolver(scene.Dir)
		_, err := resolver.CurrentBranch(context.Background())
		require.ErrorIs(t, err, workseterrors.ErrNoBranch)
	})
}

func TestNewResolver(t *testing.T) {
	t.Run("prefers go-git when the repository opens", func(t *testing.T) {
		scene := testhelpers.NewSceneWithCommit(t)

		resolver := git.NewResolver(scene.Dir)
		_, ok := resolver.(*git.RepoResolver)
		require.True(t, ok)
	})

	t.Run("falls back to the CLI outside a repository", func(t *testing.T) {
		resolver := git.NewResolver(t.TempDir())
		_, ok := resolver.(*git.CommandResolver)
		require.True(t, ok)
	})
}
