package branch

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/raphi011/devctl/internal/state"
)

func syncedState(ticket string) *state.State {
	return &state.State{Ticket: ticket, Branch: FeatureBranch(ticket)}
}

func TestStatus_NoState(t *testing.T) {
	t.Parallel()

	gw := newFakeGateway()
	repos := twoRepos(gw)

	_, _, err := NewReconciler(gw, &fakeStore{}).Status(context.Background(), repos)
	if !errors.Is(err, state.ErrNoState) {
		t.Fatalf("Status() without state = %v, want ErrNoState", err)
	}
	// No repo may be inspected before the state check
	if len(gw.calls) != 0 {
		t.Errorf("gateway calls before state check: %v", gw.calls)
	}
}

func TestStatus_MalformedStateRejected(t *testing.T) {
	t.Parallel()

	gw := newFakeGateway()
	repos := twoRepos(gw)
	// Branch disagrees with ticket: not written by a start run
	store := &fakeStore{st: &state.State{Ticket: "T-1", Branch: "hotfix/T-9"}}

	_, _, err := NewReconciler(gw, store).Status(context.Background(), repos)
	if !errors.Is(err, state.ErrNoState) {
		t.Fatalf("Status() with inconsistent state = %v, want ErrNoState", err)
	}
	if len(gw.calls) != 0 {
		t.Errorf("gateway calls before state validation: %v", gw.calls)
	}
}

func TestStatus_AllInSync(t *testing.T) {
	t.Parallel()

	gw := newFakeGateway()
	repos := twoRepos(gw)
	for _, path := range []string{"/a", "/b"} {
		r := gw.repo(path)
		r.current = "feature/T-1"
		r.local["feature/T-1"] = true
		r.remote["feature/T-1"] = true
	}

	expected, statuses, err := NewReconciler(gw, &fakeStore{st: syncedState("T-1")}).
		Status(context.Background(), repos)
	if err != nil {
		t.Fatalf("Status() failed: %v", err)
	}

	if expected != "feature/T-1" {
		t.Errorf("expected branch = %q, want feature/T-1", expected)
	}
	if len(statuses) != 2 {
		t.Fatalf("got %d statuses, want 2", len(statuses))
	}
	if !AllInSync(statuses) {
		t.Errorf("AllInSync() = false, statuses: %+v", statuses)
	}
}

func TestStatus_BranchMismatch(t *testing.T) {
	t.Parallel()

	gw := newFakeGateway()
	repos := twoRepos(gw)
	// a is on the feature branch, b drifted back to main
	ra := gw.repo("/a")
	ra.current = "feature/T-1"
	ra.remote["feature/T-1"] = true
	gw.repo("/b").remote["feature/T-1"] = true

	_, statuses, err := NewReconciler(gw, &fakeStore{st: syncedState("T-1")}).
		Status(context.Background(), repos)
	if err != nil {
		t.Fatalf("Status() failed: %v", err)
	}

	if !statuses[0].InSync() {
		t.Errorf("a status = %+v, want in sync", statuses[0])
	}

	b := statuses[1]
	if b.MatchesExpected {
		t.Error("b MatchesExpected = true, want false")
	}
	if b.LocalBranch != "main" {
		t.Errorf("b LocalBranch = %q, want main", b.LocalBranch)
	}
	// Mismatch is independent of remote/clean state
	if !b.RemoteExists || !b.WorkingTreeClean {
		t.Errorf("b remote/clean = %v/%v, want true/true", b.RemoteExists, b.WorkingTreeClean)
	}

	if AllInSync(statuses) {
		t.Error("AllInSync() = true, want false")
	}
}

func TestStatus_DirtyTreeFailsRun(t *testing.T) {
	t.Parallel()

	gw := newFakeGateway()
	repos := twoRepos(gw)
	for _, path := range []string{"/a", "/b"} {
		r := gw.repo(path)
		r.current = "feature/T-1"
		r.remote["feature/T-1"] = true
	}
	// a matches the branch but has uncommitted changes
	gw.repo("/a").clean = false

	_, statuses, err := NewReconciler(gw, &fakeStore{st: syncedState("T-1")}).
		Status(context.Background(), repos)
	if err != nil {
		t.Fatalf("Status() failed: %v", err)
	}

	a := statuses[0]
	if !a.MatchesExpected {
		t.Error("a MatchesExpected = false, want true")
	}
	if a.WorkingTreeClean {
		t.Error("a WorkingTreeClean = true, want false")
	}
	if a.InSync() {
		t.Error("a InSync() = true, want false")
	}
	if AllInSync(statuses) {
		t.Error("AllInSync() = true with dirty tree, want false")
	}
}

func TestStatus_MissingRemoteBranch(t *testing.T) {
	t.Parallel()

	gw := newFakeGateway()
	repos := twoRepos(gw)
	for _, path := range []string{"/a", "/b"} {
		gw.repo(path).current = "feature/T-1"
	}
	gw.repo("/a").remote["feature/T-1"] = true
	// b never got pushed

	_, statuses, err := NewReconciler(gw, &fakeStore{st: syncedState("T-1")}).
		Status(context.Background(), repos)
	if err != nil {
		t.Fatalf("Status() failed: %v", err)
	}

	if statuses[1].RemoteExists {
		t.Error("b RemoteExists = true, want false")
	}
	if statuses[1].InSync() {
		t.Error("b InSync() = true, want false")
	}
}

func TestStatus_GitErrorScopedToRepo(t *testing.T) {
	t.Parallel()

	gw := newFakeGateway()
	repos := twoRepos(gw)
	gw.repo("/a").failOn["current"] = fmt.Errorf("not a git repository")
	rb := gw.repo("/b")
	rb.current = "feature/T-1"
	rb.remote["feature/T-1"] = true

	_, statuses, err := NewReconciler(gw, &fakeStore{st: syncedState("T-1")}).
		Status(context.Background(), repos)
	if err != nil {
		t.Fatalf("Status() failed: %v", err)
	}

	if statuses[0].Err == nil {
		t.Error("a Err = nil, want git error")
	}
	if statuses[0].InSync() {
		t.Error("a InSync() = true, want false")
	}
	// The run continues past the failing repo
	if !statuses[1].InSync() {
		t.Errorf("b status = %+v, want in sync", statuses[1])
	}
}
