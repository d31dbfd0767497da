package runtime

import (
	"fmt"
	"os"

	"worksets.dev/worksets/internal/config"
	"worksets.dev/worksets/internal/editor"
	"worksets.dev/worksets/internal/git"
	"worksets.dev/worksets/internal/state"
	"worksets.dev/worksets/internal/tracker"
	"worksets.dev/worksets/internal/tui"
)

// Context provides access to the tracker and output for commands
type Context struct {
	Tracker  *tracker.Tracker
	Store    state.Store
	Resolver git.Resolver
	Config   *config.RepoConfig
	Splog    *tui.Splog
	RepoRoot string
}

// NewContextForRepo builds a context rooted at repoRoot
func NewContextForRepo(repoRoot string) (*Context, error) {
	gitDir, err := git.GitDirPath(repoRoot)
	if err != nil {
		return nil, err
	}

	cfg, err := config.GetRepoConfig(repoRoot)
	if err != nil {
		return nil, err
	}

	splog := tui.NewSplog()
	store := state.NewFileStoreInGitDir(gitDir)
	resolver := git.NewResolver(repoRoot)
	host := editor.NewCommandHost(cfg.OpenCommand(), cfg.CloseAllCommand(), repoRoot)

	trk, err := tracker.NewTracker(resolver, store, host, splog, tracker.Options{
		RepoRoot:  repoRoot,
		MaxListed: cfg.MaxListed(),
	})
	if err != nil {
		return nil, err
	}

	return &Context{
		Tracker:  trk,
		Store:    store,
		Resolver: resolver,
		Config:   cfg,
		Splog:    splog,
		RepoRoot: repoRoot,
	}, nil
}

// GetContext locates the enclosing repository and builds a context for it
func GetContext() (*Context, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	repoRoot, err := git.GetRepoRoot(wd)
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	return NewContextForRepo(repoRoot)
}
