package branch

import (
	"context"

	"github.com/raphi011/devctl/internal/state"
)

// Gateway is the version-control capability the orchestrator and
// reconciler depend on. Every call is scoped to an explicit repoPath;
// implementations must never rely on the process working directory.
// Errors carry the underlying tool's diagnostic text; callers surface
// it without interpreting it.
type Gateway interface {
	// Fetch refreshes remote-tracking refs from origin.
	Fetch(ctx context.Context, repoPath string) error
	// CurrentBranch returns the checked-out branch name.
	CurrentBranch(ctx context.Context, repoPath string) (string, error)
	// LocalBranchExists reports whether branch exists in the local ref store.
	LocalBranchExists(ctx context.Context, repoPath, branch string) (bool, error)
	// RemoteBranchExists reports whether branch exists on origin.
	RemoteBranchExists(ctx context.Context, repoPath, branch string) (bool, error)
	// Checkout switches the working tree to an existing branch.
	Checkout(ctx context.Context, repoPath, branch string) error
	// FastForwardPull updates the current branch, refusing merge commits.
	FastForwardPull(ctx context.Context, repoPath string) error
	// CreateBranch creates branch at HEAD and checks it out.
	CreateBranch(ctx context.Context, repoPath, branch string) error
	// PushSetUpstream publishes branch with upstream tracking, never forced.
	PushSetUpstream(ctx context.Context, repoPath, branch string) error
	// IsWorkingTreeClean reports whether the tree has no staged,
	// unstaged, or untracked changes.
	IsWorkingTreeClean(ctx context.Context, repoPath string) (bool, error)
}

// Store persists the session record between runs. The orchestrator
// writes it after a successful start; the reconciler reads it.
type Store interface {
	// Load returns the session state, or state.ErrNoState when absent
	// or malformed.
	Load() (state.State, error)
	// Save overwrites the session state atomically.
	Save(st state.State) error
}
