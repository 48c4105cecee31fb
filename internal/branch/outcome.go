package branch

// Result tags an orchestrator outcome for one repository.
type Result int

const (
	// ResultCreated means the feature branch was created and pushed.
	ResultCreated Result = iota
	// ResultReused means an existing local branch was checked out and
	// re-pushed because the reuse flag was set.
	ResultReused
	// ResultFailed means a step failed and the repo's remaining steps
	// were skipped.
	ResultFailed
)

func (r Result) String() string {
	switch r {
	case ResultCreated:
		return "created"
	case ResultReused:
		return "reused"
	case ResultFailed:
		return "failed"
	}
	return "unknown"
}

// Outcome is the immutable per-repository result of a start run.
type Outcome struct {
	Repo    string
	Result  Result
	Warning string // non-fatal, e.g. remote branch already existed
	Err     error  // set iff Result == ResultFailed
}

// Succeeded reports whether the repo's branch exists and is published.
func (o Outcome) Succeeded() bool {
	return o.Result == ResultCreated || o.Result == ResultReused
}

// AnySucceeded reports whether at least one repo succeeded. Session
// state is written exactly when this holds.
func AnySucceeded(outcomes []Outcome) bool {
	for _, o := range outcomes {
		if o.Succeeded() {
			return true
		}
	}
	return false
}

// AllSucceeded is the run-level reduction for start: success only when
// every repo succeeded.
func AllSucceeded(outcomes []Outcome) bool {
	for _, o := range outcomes {
		if !o.Succeeded() {
			return false
		}
	}
	return true
}

// RepoStatus is the per-repository result of a reconciliation pass.
// It is computed fresh each run and never persisted.
type RepoStatus struct {
	Repo             string
	LocalBranch      string
	MatchesExpected  bool
	RemoteExists     bool
	WorkingTreeClean bool
	Err              error // a git call failed; the other fields are unreliable
}

// InSync reports whether the repo matches the recorded session on
// every axis.
func (s RepoStatus) InSync() bool {
	return s.Err == nil && s.MatchesExpected && s.RemoteExists && s.WorkingTreeClean
}

// AllInSync is the run-level reduction for status.
func AllInSync(statuses []RepoStatus) bool {
	for _, s := range statuses {
		if !s.InSync() {
			return false
		}
	}
	return true
}
