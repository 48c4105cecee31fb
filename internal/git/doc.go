// Package git provides the version-control operations devctl needs,
// implemented by shelling out to the git CLI.
//
// Every operation takes an explicit repository path and runs git with
// -C <path>; nothing ever depends on the process working directory, so
// operations on different repositories can never observe each other's
// in-flight state.
//
// Calling the git CLI directly (rather than a Go git library) keeps the
// tool compatible with user configurations: SSH keys, credential
// helpers, and aliases all behave exactly as they do on the command
// line. Failed commands surface git's own stderr text in the returned
// error; callers report it, they never parse it.
package git
