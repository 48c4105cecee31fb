package branch

import (
	"context"
	"errors"
	"fmt"

	"github.com/raphi011/devctl/internal/config"
	"github.com/raphi011/devctl/internal/state"
)

// ErrBranchExists indicates the feature branch already exists locally
// and the reuse flag was not set.
var ErrBranchExists = errors.New("local branch already exists")

// StartOptions are the caller inputs for one start run.
type StartOptions struct {
	// Ticket names the branch; must be non-empty.
	Ticket string
	// BaseOverride replaces every repo's configured base for this run.
	BaseOverride string
	// Reuse permits proceeding when the local branch already exists.
	Reuse bool
}

// Orchestrator creates the feature branch in every repo it is given,
// one repo at a time, collecting outcomes instead of aborting on
// failure.
type Orchestrator struct {
	gw    Gateway
	store Store
}

// NewOrchestrator creates an orchestrator using the given gateway and
// session store.
func NewOrchestrator(gw Gateway, store Store) *Orchestrator {
	return &Orchestrator{gw: gw, store: store}
}

// Start runs the per-repo state machine over repos in order and returns
// one outcome per repo. When at least one repo succeeded the session
// state is written, whole, exactly once; a run where every repo failed
// leaves any previous session untouched.
func (o *Orchestrator) Start(ctx context.Context, repos []config.Repo, opts StartOptions) ([]Outcome, error) {
	if opts.Ticket == "" {
		return nil, errors.New("ticket must not be empty")
	}

	name := FeatureBranch(opts.Ticket)

	outcomes := make([]Outcome, 0, len(repos))
	for _, repo := range repos {
		outcomes = append(outcomes, o.startRepo(ctx, repo, name, opts))
	}

	if AnySucceeded(outcomes) {
		st := state.State{Ticket: opts.Ticket, Branch: name, BaseOverride: opts.BaseOverride}
		if err := o.store.Save(st); err != nil {
			return outcomes, err
		}
	}

	return outcomes, nil
}

// startRepo drives one repository from fetch to push. The first failing
// step terminates that repo's run; later repos are unaffected.
func (o *Orchestrator) startRepo(ctx context.Context, repo config.Repo, name string, opts StartOptions) Outcome {
	out := Outcome{Repo: repo.Name}
	fail := func(err error) Outcome {
		out.Result = ResultFailed
		out.Err = err
		return out
	}

	// Sync remote state first so the existence checks below are accurate.
	if err := o.gw.Fetch(ctx, repo.Path); err != nil {
		return fail(err)
	}

	exists, err := o.gw.LocalBranchExists(ctx, repo.Path, name)
	if err != nil {
		return fail(err)
	}
	if exists {
		if !opts.Reuse {
			return fail(fmt.Errorf("%w: %s (use --force to check it out and re-push)", ErrBranchExists, name))
		}
		// Reuse: check out and publish whatever is there, skip creation.
		if err := o.gw.Checkout(ctx, repo.Path, name); err != nil {
			return fail(err)
		}
		if err := o.gw.PushSetUpstream(ctx, repo.Path, name); err != nil {
			return fail(err)
		}
		out.Result = ResultReused
		return out
	}

	// A branch already on the remote is a warning, not an error: the
	// upstream push below lands on it idempotently.
	remote, err := o.gw.RemoteBranchExists(ctx, repo.Path, name)
	if err != nil {
		return fail(err)
	}
	if remote {
		out.Warning = fmt.Sprintf("remote branch %q already exists, will create local branch and push", name)
	}

	base := repo.Base
	if opts.BaseOverride != "" {
		base = opts.BaseOverride
	}
	if err := o.gw.Checkout(ctx, repo.Path, base); err != nil {
		return fail(err)
	}
	// ff-only: a diverged base fails here and the repo stays on base,
	// never in a conflicted state.
	if err := o.gw.FastForwardPull(ctx, repo.Path); err != nil {
		return fail(err)
	}

	if err := o.gw.CreateBranch(ctx, repo.Path, name); err != nil {
		return fail(err)
	}
	// A failed push still leaves the local branch in place; the caller
	// may re-run with --force to retry publishing.
	if err := o.gw.PushSetUpstream(ctx, repo.Path, name); err != nil {
		return fail(err)
	}

	out.Result = ResultCreated
	return out
}
