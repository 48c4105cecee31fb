// Package cmd provides helpers for executing external commands with proper
// error handling.
//
// This package wraps [os/exec.Cmd] to capture stderr and include it in error
// messages, making command failures more informative for users. All helpers
// take a context for cancellation and echo the invocation through the log
// package when verbose mode is enabled.
//
// # Design Notes
//
// devctl shells out to the git CLI rather than using Go git libraries.
// This approach is simpler, more reliable, and ensures compatibility with
// user configurations (SSH keys, credential helpers, aliases).
package cmd
