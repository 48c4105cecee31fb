package main

import (
	"context"
	"fmt"

	"github.com/raphi011/devctl/internal/branch"
	"github.com/raphi011/devctl/internal/config"
	"github.com/raphi011/devctl/internal/git"
	"github.com/raphi011/devctl/internal/log"
	"github.com/raphi011/devctl/internal/output"
	"github.com/raphi011/devctl/internal/state"
	"github.com/raphi011/devctl/internal/ui/styles"
)

// startParams holds the inputs for one start run.
type startParams struct {
	ticket    string
	base      string
	force     bool
	repoNames []string
}

func runStart(ctx context.Context, workDir string, p startParams) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	cfg, err := config.Load(workDir)
	if err != nil {
		return err
	}

	// Unknown names fail the whole run before any repo is touched
	repos, err := cfg.Select(p.repoNames)
	if err != nil {
		return err
	}

	name := branch.FeatureBranch(p.ticket)
	l.Printf("Creating %s in %d repo(s)\n", name, len(repos))

	orch := branch.NewOrchestrator(git.CLI{}, state.NewStore(workDir))
	outcomes, err := orch.Start(ctx, repos, branch.StartOptions{
		Ticket:       p.ticket,
		BaseOverride: p.base,
		Reuse:        p.force,
	})
	if err != nil {
		return err
	}

	printOutcomes(out, outcomes, name)

	if !branch.AllSucceeded(outcomes) {
		return fmt.Errorf("branch synchronization incomplete")
	}

	out.Println()
	out.Println("Branch synchronization complete.")
	return nil
}

// printOutcomes renders one line per repo, in run order.
func printOutcomes(out *output.Printer, outcomes []branch.Outcome, name string) {
	for _, o := range outcomes {
		if o.Warning != "" {
			out.Printf("  %s %s: %s\n", styles.Warn(), o.Repo, o.Warning)
		}

		switch o.Result {
		case branch.ResultCreated:
			out.Printf("  %s %s → %s created & pushed\n", styles.Ok(), o.Repo, name)
		case branch.ResultReused:
			out.Printf("  %s %s → %s (existing branch re-pushed)\n", styles.Ok(), o.Repo, name)
		case branch.ResultFailed:
			out.Printf("  %s %s: %v\n", styles.Fail(), o.Repo, o.Err)
		}
	}
}
