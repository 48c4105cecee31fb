package branch

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphi011/devctl/internal/state"
)

// fakeRepo models one repository's mutable git state for tests.
type fakeRepo struct {
	current  string
	local    map[string]bool
	remote   map[string]bool
	clean    bool
	detached bool
	// failOn maps an operation name (fetch, checkout, pull, create,
	// push, ls-remote, status, current) to the error it should return.
	failOn map[string]error
}

func newFakeRepo(current string) *fakeRepo {
	return &fakeRepo{
		current: current,
		local:   map[string]bool{current: true},
		remote:  map[string]bool{current: true},
		clean:   true,
		failOn:  map[string]error{},
	}
}

// fakeGateway implements Gateway over in-memory repos and records every
// call as "op path" or "op path branch".
type fakeGateway struct {
	repos map[string]*fakeRepo
	calls []string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{repos: map[string]*fakeRepo{}}
}

func (g *fakeGateway) addRepo(path, base string) *fakeRepo {
	r := newFakeRepo(base)
	g.repos[path] = r
	return r
}

func (g *fakeGateway) repo(path string) *fakeRepo {
	r, ok := g.repos[path]
	if !ok {
		panic("fakeGateway: unknown repo " + path)
	}
	return r
}

func (g *fakeGateway) record(op, path string, extra ...string) {
	call := op + " " + path
	for _, e := range extra {
		call += " " + e
	}
	g.calls = append(g.calls, call)
}

// callsFor returns recorded calls touching path.
func (g *fakeGateway) callsFor(path string) []string {
	var out []string
	for _, c := range g.calls {
		if strings.Contains(c, " "+path) {
			out = append(out, c)
		}
	}
	return out
}

func (g *fakeGateway) Fetch(_ context.Context, path string) error {
	g.record("fetch", path)
	if err := g.repo(path).failOn["fetch"]; err != nil {
		return err
	}
	return nil
}

func (g *fakeGateway) CurrentBranch(_ context.Context, path string) (string, error) {
	g.record("current", path)
	r := g.repo(path)
	if err := r.failOn["current"]; err != nil {
		return "", err
	}
	if r.detached {
		return "", fmt.Errorf("repository is in detached HEAD state")
	}
	return r.current, nil
}

func (g *fakeGateway) LocalBranchExists(_ context.Context, path, branch string) (bool, error) {
	g.record("local-exists", path, branch)
	return g.repo(path).local[branch], nil
}

func (g *fakeGateway) RemoteBranchExists(_ context.Context, path, branch string) (bool, error) {
	g.record("ls-remote", path, branch)
	r := g.repo(path)
	if err := r.failOn["ls-remote"]; err != nil {
		return false, err
	}
	return r.remote[branch], nil
}

func (g *fakeGateway) Checkout(_ context.Context, path, branch string) error {
	g.record("checkout", path, branch)
	r := g.repo(path)
	if err := r.failOn["checkout"]; err != nil {
		return err
	}
	if !r.local[branch] {
		return fmt.Errorf("checkout %s: branch not found", branch)
	}
	r.current = branch
	return nil
}

func (g *fakeGateway) FastForwardPull(_ context.Context, path string) error {
	g.record("pull", path)
	if err := g.repo(path).failOn["pull"]; err != nil {
		return err
	}
	return nil
}

func (g *fakeGateway) CreateBranch(_ context.Context, path, branch string) error {
	g.record("create", path, branch)
	r := g.repo(path)
	if err := r.failOn["create"]; err != nil {
		return err
	}
	r.local[branch] = true
	r.current = branch
	return nil
}

func (g *fakeGateway) PushSetUpstream(_ context.Context, path, branch string) error {
	g.record("push", path, branch)
	r := g.repo(path)
	if err := r.failOn["push"]; err != nil {
		return err
	}
	r.remote[branch] = true
	return nil
}

func (g *fakeGateway) IsWorkingTreeClean(_ context.Context, path string) (bool, error) {
	g.record("status", path)
	r := g.repo(path)
	if err := r.failOn["status"]; err != nil {
		return false, err
	}
	return r.clean, nil
}

// fakeStore implements Store in memory.
type fakeStore struct {
	st      *state.State
	saveErr error
	saves   int
}

func (s *fakeStore) Load() (state.State, error) {
	if s.st == nil {
		return state.State{}, state.ErrNoState
	}
	return *s.st, nil
}

func (s *fakeStore) Save(st state.State) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.st = &st
	return nil
}
