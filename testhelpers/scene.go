package testhelpers

import (
	"testing"
)

// Scene represents a test scene with a temporary directory and Git repository.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with a temporary directory and Git
// repository. The directory is cleaned up automatically by the test runner.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	dir := t.TempDir()

	repo, err := NewGitRepo(dir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:  dir,
		Repo: repo,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Failed to set up scene: %v", err)
		}
	}

	return scene
}

// NewSceneWithCommit creates a scene whose repository has one initial commit.
func NewSceneWithCommit(t *testing.T) *Scene {
	t.Helper()
	return NewScene(t, func(s *Scene) error {
		return s.Repo.CreateChangeAndCommit("initial.txt", "init")
	})
}
