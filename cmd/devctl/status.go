package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/raphi011/devctl/internal/branch"
	"github.com/raphi011/devctl/internal/config"
	"github.com/raphi011/devctl/internal/git"
	"github.com/raphi011/devctl/internal/output"
	"github.com/raphi011/devctl/internal/state"
	"github.com/raphi011/devctl/internal/ui/static"
	"github.com/raphi011/devctl/internal/ui/styles"
)

func runStatus(ctx context.Context, workDir string, repoNames []string) error {
	out := output.FromContext(ctx)

	cfg, err := config.Load(workDir)
	if err != nil {
		return err
	}

	repos, err := cfg.Select(repoNames)
	if err != nil {
		return err
	}

	rec := branch.NewReconciler(git.CLI{}, state.NewStore(workDir))

	expected, statuses, err := rec.Status(ctx, repos)
	if err != nil {
		if errors.Is(err, state.ErrNoState) {
			return fmt.Errorf("no active feature branch, run 'devctl start' first: %w", err)
		}
		return err
	}

	out.Printf("Feature branch: %s\n\n", styles.Bold.Render(expected))

	rows := make([][]string, 0, len(statuses))
	for _, st := range statuses {
		rows = append(rows, static.StatusTableRow(st, expected))
	}

	out.Println(static.RenderTable(static.StatusHeaders, rows))

	if !branch.AllInSync(statuses) {
		return errors.New("one or more repos are out of sync")
	}

	out.Println(styles.OkText("All repos in sync."))

	return nil
}
