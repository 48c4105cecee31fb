package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/raphi011/devctl/internal/config"
	"github.com/raphi011/devctl/internal/git"
	"github.com/raphi011/devctl/internal/log"
	"github.com/raphi011/devctl/internal/output"
	"github.com/raphi011/devctl/internal/ui/styles"
)

func runInit(ctx context.Context, workDir string, force bool) error {
	out := output.FromContext(ctx)
	logger := log.FromContext(ctx)

	if config.Exists(workDir) && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", config.ConfigFile)
	}

	names, err := git.Scan(workDir)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no git repositories found in %s", workDir)
	}

	repos := make([]config.Repo, 0, len(names))
	for _, name := range names {
		base := git.DefaultBranch(ctx, filepath.Join(workDir, name))
		logger.Printf("discovered %s (base %s)\n", name, base)
		repos = append(repos, config.Repo{
			Name: name,
			Path: "./" + name,
			Base: base,
		})
	}

	if err := config.Write(workDir, repos); err != nil {
		return err
	}

	out.Printf("Wrote %s with %d repo(s):\n", config.ConfigFile, len(repos))
	for _, r := range repos {
		out.Printf("  %s %s (base: %s)\n", styles.Ok(), r.Name, r.Base)
	}

	return nil
}
