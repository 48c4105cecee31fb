package git

import (
	"context"
	"fmt"
	"strings"
)

// CLI performs git operations by invoking the git command line tool.
// It is stateless; every method is scoped to the repoPath it is given.
// CLI satisfies the branch.Gateway contract.
type CLI struct{}

// Fetch refreshes all remote-tracking refs from origin.
func (CLI) Fetch(ctx context.Context, repoPath string) error {
	if err := runGit(ctx, repoPath, "fetch", "origin"); err != nil {
		return fmt.Errorf("fetch origin: %w", err)
	}
	return nil
}

// CurrentBranch returns the name of the currently checked-out branch.
// A detached HEAD is reported as an error.
func (CLI) CurrentBranch(ctx context.Context, repoPath string) (string, error) {
	output, err := outputGit(ctx, repoPath, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("current branch: %w", err)
	}
	branch := strings.TrimSpace(string(output))
	if branch == "HEAD" {
		return "", fmt.Errorf("repository is in detached HEAD state")
	}
	return branch, nil
}

// LocalBranchExists returns true if the branch exists in the local ref store.
func (CLI) LocalBranchExists(ctx context.Context, repoPath, branch string) (bool, error) {
	// rev-parse --verify exits non-zero when the ref is absent; that is
	// the signal, not a failure.
	err := runGit(ctx, repoPath, "rev-parse", "--verify", "--quiet", "refs/heads/"+branch)
	return err == nil, nil
}

// RemoteBranchExists returns true if the branch exists on origin.
// Uses ls-remote so it does not require a prior fetch.
func (CLI) RemoteBranchExists(ctx context.Context, repoPath, branch string) (bool, error) {
	output, err := outputGit(ctx, repoPath, "ls-remote", "--heads", "origin", branch)
	if err != nil {
		return false, fmt.Errorf("ls-remote origin: %w", err)
	}
	// ls-remote exits 0 even when not found; presence in stdout is the signal
	return strings.TrimSpace(string(output)) != "", nil
}

// Checkout switches the working tree to an existing branch.
func (CLI) Checkout(ctx context.Context, repoPath, branch string) error {
	if err := runGit(ctx, repoPath, "checkout", branch); err != nil {
		return fmt.Errorf("checkout %s: %w", branch, err)
	}
	return nil
}

// FastForwardPull updates the current branch from origin, refusing to
// create a merge commit. Diverged history surfaces as an error.
func (CLI) FastForwardPull(ctx context.Context, repoPath string) error {
	if err := runGit(ctx, repoPath, "pull", "--ff-only"); err != nil {
		return fmt.Errorf("pull --ff-only: %w", err)
	}
	return nil
}

// CreateBranch creates a new branch at the current HEAD and checks it out.
func (CLI) CreateBranch(ctx context.Context, repoPath, branch string) error {
	if err := runGit(ctx, repoPath, "checkout", "-b", branch); err != nil {
		return fmt.Errorf("create branch %s: %w", branch, err)
	}
	return nil
}

// PushSetUpstream pushes the branch to origin and configures upstream
// tracking. Never force-pushes.
func (CLI) PushSetUpstream(ctx context.Context, repoPath, branch string) error {
	if err := runGit(ctx, repoPath, "push", "--set-upstream", "origin", branch); err != nil {
		return fmt.Errorf("push %s: %w", branch, err)
	}
	return nil
}

// IsWorkingTreeClean returns true when there are no staged, unstaged, or
// untracked changes.
func (CLI) IsWorkingTreeClean(ctx context.Context, repoPath string) (bool, error) {
	output, err := outputGit(ctx, repoPath, "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("status: %w", err)
	}
	return strings.TrimSpace(string(output)) == "", nil
}
