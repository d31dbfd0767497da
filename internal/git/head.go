package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GitDirPath returns the git metadata directory for the repository rooted
// at repoRoot. For linked worktrees and submodules, .git is a file with a
// "gitdir:" pointer rather than a directory; the indirection is followed.
func GitDirPath(repoRoot string) (string, error) {
	gitPath := filepath.Join(repoRoot, ".git")

	info, err := os.Stat(gitPath)
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}

	if info.IsDir() {
		return gitPath, nil
	}

	data, err := os.ReadFile(gitPath)
	if err != nil {
		return "", fmt.Errorf("failed to read .git file: %w", err)
	}
	line := strings.TrimSpace(string(data))
	target, ok := strings.CutPrefix(line, "gitdir:")
	if !ok {
		return "", fmt.Errorf("unexpected .git file contents: %q", line)
	}
	gitDir := strings.TrimSpace(target)
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(repoRoot, gitDir)
	}
	return gitDir, nil
}

// HeadFilePath returns the path of the HEAD file for the repository rooted
// at repoRoot.
func HeadFilePath(repoRoot string) (string, error) {
	gitDir, err := GitDirPath(repoRoot)
	if err != nil {
		return "", err
	}

	headPath := filepath.Join(gitDir, "HEAD")
	if _, err := os.Stat(headPath); err != nil {
		return "", fmt.Errorf("HEAD not found: %w", err)
	}
	return headPath, nil
}
