package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scan returns the immediate subdirectories of dir that are git
// repositories, sorted by name.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var repos []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if IsRepo(filepath.Join(dir, entry.Name())) {
			repos = append(repos, entry.Name())
		}
	}

	sort.Strings(repos)
	return repos, nil
}

// DefaultBranch returns the default branch for the repo (e.g. "main").
// Tries the origin/HEAD symbolic ref first (set when you clone), falls
// back to the currently checked-out branch, then to "main".
func DefaultBranch(ctx context.Context, repoPath string) string {
	output, err := outputGit(ctx, repoPath, "symbolic-ref", "refs/remotes/origin/HEAD", "--short")
	if err == nil {
		ref := strings.TrimSpace(string(output))
		// "origin/main" -> "main"
		if idx := strings.Index(ref, "/"); idx != -1 {
			return ref[idx+1:]
		}
		return ref
	}

	if branch, err := (CLI{}).CurrentBranch(ctx, repoPath); err == nil {
		return branch
	}

	return "main"
}
