package state_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"worksets.dev/worksets/internal/state"
)

func newFileStore(t *testing.T) *state.FileStore {
	t.Helper()
	return state.NewFileStore(filepath.Join(t.TempDir(), state.StateFileName))
}

func TestFileStoreBranchStates(t *testing.T) {
	t.Run("absent branch returns nil", func(t *testing.T) {
		store := newFileStore(t)

		bs, err := store.GetBranchState("main")
		require.NoError(t, err)
		require.Nil(t, bs)
	})

	t.Run("put then get round-trips order", func(t *testing.T) {
		store := newFileStore(t)

		files := []string{"/repo/b.go", "/repo/a.go", "/repo/c.go"}
		require.NoError(t, store.PutBranchState("main", &state.BranchState{Files: files}))

		bs, err := store.GetBranchState("main")
		require.NoError(t, err)
		require.NotNil(t, bs)
		require.Equal(t, files, bs.Files)
	})

	t.Run("put overwrites previous state", func(t *testing.T) {
		store := newFileStore(t)

		require.NoError(t, store.PutBranchState("main", &state.BranchState{Files: []string{"/old"}}))
		require.NoError(t, store.PutBranchState("main", &state.BranchState{Files: []string{"/new"}}))

		bs, err := store.GetBranchState("main")
		require.NoError(t, err)
		require.Equal(t, []string{"/new"}, bs.Files)
	})

	t.Run("delete removes the entry", func(t *testing.T) {
		store := newFileStore(t)

		require.NoError(t, store.PutBranchState("main", &state.BranchState{Files: []string{"/a"}}))
		require.NoError(t, store.DeleteBranchState("main"))

		bs, err := store.GetBranchState("main")
		require.NoError(t, err)
		require.Nil(t, bs)

		// Deleting an absent entry is a no-op
		require.NoError(t, store.DeleteBranchState("main"))
	})

	t.Run("list returns sorted branch names", func(t *testing.T) {
		store := newFileStore(t)

		require.NoError(t, store.PutBranchState("zeta", &state.BranchState{Files: []string{"/z"}}))
		require.NoError(t, store.PutBranchState("alpha", &state.BranchState{Files: []string{"/a"}}))

		branches, err := store.ListBranches()
		require.NoError(t, err)
		require.Equal(t, []string{"alpha", "zeta"}, branches)
	})
}

func TestFileStoreOpenFiles(t *testing.T) {
	store := newFileStore(t)

	files, err := store.GetOpenFiles()
	require.NoError(t, err)
	require.Empty(t, files)

	require.NoError(t, store.SetOpenFiles([]string{"/repo/a.go", "/repo/b.go"}))

	files, err = store.GetOpenFiles()
	require.NoError(t, err)
	require.Equal(t, []string{"/repo/a.go", "/repo/b.go"}, files)
}

func TestFileStoreClearAll(t *testing.T) {
	store := newFileStore(t)

	require.NoError(t, store.PutBranchState("main", &state.BranchState{Files: []string{"/a"}}))
	require.NoError(t, store.SetOpenFiles([]string{"/a"}))

	require.NoError(t, store.ClearAll())

	bs, err := store.GetBranchState("main")
	require.NoError(t, err)
	require.Nil(t, bs)

	files, err := store.GetOpenFiles()
	require.NoError(t, err)
	require.Empty(t, files)
}

func TestFileStoreSurvivesCorruptionlessReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, state.StateFileName)

	store := state.NewFileStore(path)
	require.NoError(t, store.PutBranchState("main", &state.BranchState{Files: []string{"/a"}}))

	// A fresh store over the same file sees the persisted document
	reopened := state.NewFileStore(path)
	bs, err := reopened.GetBranchState("main")
	require.NoError(t, err)
	require.Equal(t, []string{"/a"}, bs.Files)

	// No temp files are left behind by the atomic write
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestFileStoreRejectsMalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), state.StateFileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	store := state.NewFileStore(path)
	_, err := store.GetBranchState("main")
	require.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	store := state.NewMemoryStore()

	require.NoError(t, store.PutBranchState("main", &state.BranchState{Files: []string{"/a"}}))
	bs, err := store.GetBranchState("main")
	require.NoError(t, err)
	require.Equal(t, []string{"/a"}, bs.Files)

	require.NoError(t, store.ClearAll())
	bs, err = store.GetBranchState("main")
	require.NoError(t, err)
	require.Nil(t, bs)
}
