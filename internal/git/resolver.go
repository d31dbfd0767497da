package git

import (
	"context"
	"fmt"

	workseterrors "worksets.dev/worksets/internal/errors"
)

// Resolver reports the branch HEAD currently points at.
// Implementations fail with an error wrapping ErrNoBranch when there is no
// repository, HEAD is detached, or the query itself fails; callers treat
// that as "branch unknown" and take no further action.
type Resolver interface {
	CurrentBranch(ctx context.Context) (string, error)
}

// RepoResolver resolves the current branch through go-git
type RepoResolver struct {
	repoRoot string
}

// NewRepoResolver creates a resolver backed by go-git for the given repo root
func NewRepoResolver(repoRoot string) *RepoResolver {
	return &RepoResolver{repoRoot: repoRoot}
}

// CurrentBranch returns the current branch short name
func (r *RepoResolver) CurrentBranch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// The repository is re-opened per call so that ref changes made by
	// other processes are always observed.
	repo, err := OpenRepository(r.repoRoot)
	if err != nil {
		return "", fmt.Errorf("%w: %v", workseterrors.ErrNoBranch, err)
	}

	branch, err := repo.CurrentBranch()
	if err != nil {
		return "", fmt.Errorf("%w: %v", workseterrors.ErrNoBranch, err)
	}

	return branch, nil
}

// CommandResolver resolves the current branch by shelling out to the git CLI
type CommandResolver struct {
	runner *CommandRunner
}

// NewCommandResolver creates a resolver that invokes git in workingDir
func NewCommandResolver(workingDir string) *CommandResolver {
	return &CommandResolver{runner: NewCommandRunner(workingDir)}
}

// CurrentBranch returns the current branch short name
func (r *CommandResolver) CurrentBranch(ctx context.Context) (string, error) {
	output, err := r.runner.Run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("%w: %v", workseterrors.ErrNoBranch, err)
	}
	if output == "" || output == "HEAD" {
		// rev-parse prints the literal "HEAD" when detached
		return "", workseterrors.ErrNoBranch
	}
	return output, nil
}

// NewResolver selects a resolver for repoRoot: go-git when the repository
// can be opened, the git CLI otherwise.
func NewResolver(repoRoot string) Resolver {
	if _, err := OpenRepository(repoRoot); err == nil {
		return NewRepoResolver(repoRoot)
	}
	return NewCommandResolver(repoRoot)
}
