package branch

import (
	"context"
	"fmt"

	"github.com/raphi011/devctl/internal/config"
	"github.com/raphi011/devctl/internal/state"
)

// Reconciler compares each repo's actual branch, remote, and working
// tree state against the recorded session.
type Reconciler struct {
	gw    Gateway
	store Store
}

// NewReconciler creates a reconciler using the given gateway and
// session store.
func NewReconciler(gw Gateway, store Store) *Reconciler {
	return &Reconciler{gw: gw, store: store}
}

// Status loads the session and inspects every repo in order. It returns
// the expected branch name and one status per repo. Missing or
// malformed session state fails the whole run before any repo is
// inspected; a git error on one repo marks only that repo and the run
// continues.
func (r *Reconciler) Status(ctx context.Context, repos []config.Repo) (string, []RepoStatus, error) {
	st, err := r.store.Load()
	if err != nil {
		return "", nil, err
	}
	// A state file whose branch disagrees with its ticket was not
	// written by a start run; refuse to reconcile against it.
	if st.Branch != FeatureBranch(st.Ticket) {
		return "", nil, fmt.Errorf("%w: recorded branch %q does not match ticket %q",
			state.ErrNoState, st.Branch, st.Ticket)
	}

	expected := st.Branch

	statuses := make([]RepoStatus, 0, len(repos))
	for _, repo := range repos {
		statuses = append(statuses, r.statusRepo(ctx, repo, expected))
	}

	return expected, statuses, nil
}

func (r *Reconciler) statusRepo(ctx context.Context, repo config.Repo, expected string) RepoStatus {
	st := RepoStatus{Repo: repo.Name}

	current, err := r.gw.CurrentBranch(ctx, repo.Path)
	if err != nil {
		st.Err = err
		return st
	}
	st.LocalBranch = current
	st.MatchesExpected = current == expected

	remote, err := r.gw.RemoteBranchExists(ctx, repo.Path, expected)
	if err != nil {
		st.Err = err
		return st
	}
	st.RemoteExists = remote

	clean, err := r.gw.IsWorkingTreeClean(ctx, repo.Path)
	if err != nil {
		st.Err = err
		return st
	}
	st.WorkingTreeClean = clean

	return st
}
