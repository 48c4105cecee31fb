//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/devctl/internal/config"
	"github.com/raphi011/devctl/internal/log"
	"github.com/raphi011/devctl/internal/output"
)

// testContext returns a context with a quiet logger and a buffered
// printer, plus the buffer holding everything the command printed.
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(io.Discard, false, true))
	ctx = output.WithPrinter(ctx, &buf)
	return ctx, &buf
}

// resolvePath resolves symlinks in a path.
// Needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// runGitCommand runs a git command in dir and returns its output.
func runGitCommand(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run %v: %v\n%s", args, err, out)
	}
	return string(out)
}

// setupRepoWithOrigin creates a git repo at dir/name with an initial
// commit on main, pushed to a local bare origin at dir/name.git.
// Returns the path to the working repo.
func setupRepoWithOrigin(t *testing.T, dir, name string) string {
	t.Helper()

	barePath := filepath.Join(dir, name+".git")
	if err := os.MkdirAll(barePath, 0755); err != nil {
		t.Fatalf("failed to create bare repo dir: %v", err)
	}
	runGitCommand(t, barePath, "git", "init", "--bare", "-b", "main")

	repoPath := filepath.Join(dir, name)
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	runGitCommand(t, repoPath, "git", "init", "-b", "main")
	runGitCommand(t, repoPath, "git", "config", "user.email", "test@test.com")
	runGitCommand(t, repoPath, "git", "config", "user.name", "Test User")
	runGitCommand(t, repoPath, "git", "config", "commit.gpgsign", "false")

	readmePath := filepath.Join(repoPath, "README.md")
	if err := os.WriteFile(readmePath, []byte("# "+name+"\n"), 0644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	runGitCommand(t, repoPath, "git", "add", "README.md")
	runGitCommand(t, repoPath, "git", "commit", "-m", "Initial commit")
	runGitCommand(t, repoPath, "git", "remote", "add", "origin", barePath)
	runGitCommand(t, repoPath, "git", "push", "-u", "origin", "main")

	return repoPath
}

// setupWorkspace creates a workspace directory containing git repos
// with the given names (each with a local bare origin) and a
// devctl.toml registering them with base "main".
// Returns the workspace path with symlinks resolved.
func setupWorkspace(t *testing.T, names ...string) string {
	t.Helper()

	dir := resolvePath(t, t.TempDir())
	repos := make([]config.Repo, 0, len(names))
	for _, name := range names {
		setupRepoWithOrigin(t, dir, name)
		repos = append(repos, config.Repo{Name: name, Path: "./" + name, Base: "main"})
	}
	if err := config.Write(dir, repos); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return dir
}

// currentBranch returns the checked-out branch of a repo.
func currentBranch(t *testing.T, repoPath string) string {
	t.Helper()
	out := runGitCommand(t, repoPath, "git", "rev-parse", "--abbrev-ref", "HEAD")
	return strings.TrimSpace(out)
}

// remoteBranchExists reports whether the branch exists on the repo's origin.
func remoteBranchExists(t *testing.T, repoPath, branch string) bool {
	t.Helper()
	out := runGitCommand(t, repoPath, "git", "ls-remote", "--heads", "origin", branch)
	return strings.TrimSpace(out) != ""
}

// createLocalBranch creates a branch without checking it out.
func createLocalBranch(t *testing.T, repoPath, branch string) {
	t.Helper()
	runGitCommand(t, repoPath, "git", "branch", branch)
}

// makeDirty creates uncommitted changes in a repo.
func makeDirty(t *testing.T, repoPath string) {
	t.Helper()
	filePath := filepath.Join(repoPath, "dirty.txt")
	if err := os.WriteFile(filePath, []byte("uncommitted changes\n"), 0644); err != nil {
		t.Fatalf("failed to create dirty file: %v", err)
	}
}
