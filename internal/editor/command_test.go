package editor_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"worksets.dev/worksets/internal/editor"
	workseterrors "worksets.dev/worksets/internal/errors"
)

func TestCommandHostOpen(t *testing.T) {
	t.Run("substitutes the path placeholder", func(t *testing.T) {
		dir := t.TempDir()
		marker := filepath.Join(dir, "opened")

		host := editor.NewCommandHost("touch {path}", "", dir)
		require.NoError(t, host.Open(context.Background(), marker))

		_, err := os.Stat(marker)
		require.NoError(t, err)
	})

	t.Run("appends the placeholder when missing", func(t *testing.T) {
		dir := t.TempDir()
		marker := filepath.Join(dir, "opened")

		host := editor.NewCommandHost("touch", "", dir)
		require.NoError(t, host.Open(context.Background(), marker))

		_, err := os.Stat(marker)
		require.NoError(t, err)
	})

	t.Run("keeps paths with spaces as one argument", func(t *testing.T) {
		dir := t.TempDir()
		marker := filepath.Join(dir, "with space")

		host := editor.NewCommandHost("touch {path}", "", dir)
		require.NoError(t, host.Open(context.Background(), marker))

		_, err := os.Stat(marker)
		require.NoError(t, err)
	})

	t.Run("fails without an open command", func(t *testing.T) {
		host := editor.NewCommandHost("", "", "")
		err := host.Open(context.Background(), "/some/file")
		require.ErrorIs(t, err, workseterrors.ErrNoOpenCommand)
	})

	t.Run("surfaces command failure with stderr", func(t *testing.T) {
		host := editor.NewCommandHost("ls {path}", "", "")
		err := host.Open(context.Background(), "/definitely/not/there")
		require.Error(t, err)

		var cmdErr *workseterrors.EditorCommandError
		require.ErrorAs(t, err, &cmdErr)
		require.Equal(t, "/definitely/not/there", cmdErr.Path)
	})
}

func TestCommandHostCloseAll(t *testing.T) {
	t.Run("no-op when unconfigured", func(t *testing.T) {
		host := editor.NewCommandHost("touch {path}", "", "")
		require.NoError(t, host.CloseAll(context.Background()))
	})

	t.Run("runs the configured command", func(t *testing.T) {
		dir := t.TempDir()
		marker := filepath.Join(dir, "closed")

		host := editor.NewCommandHost("", "touch "+marker, dir)
		require.NoError(t, host.CloseAll(context.Background()))

		_, err := os.Stat(marker)
		require.NoError(t, err)
	})
}
