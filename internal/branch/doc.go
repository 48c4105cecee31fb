// Package branch coordinates feature branches across multiple
// repositories.
//
// The orchestrator drives a per-repository state machine (fetch,
// validate, checkout base, fast-forward, branch, publish) over a
// registry of repos, and the reconciler compares each repo's actual
// state against the recorded session. Both collect one tagged outcome
// per repo instead of aborting on the first failure: repositories are
// independent units and a failure in one never changes what happens to
// another. Overall success is a pure reduction over the collected
// outcomes.
//
// All git access goes through the [Gateway] interface so the state
// machine can be tested without touching a real repository.
package branch
