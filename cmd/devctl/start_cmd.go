package main

import (
	"github.com/spf13/cobra"
)

func newStartCmd() *cobra.Command {
	var (
		base      string
		force     bool
		repoNames []string
	)

	cmd := &cobra.Command{
		Use:   "start TICKET",
		Short: "Create and push a feature branch across all configured repos",
		Long: `Create the branch feature/TICKET in every repo listed in devctl.toml:
fetch origin, check out the base branch, fast-forward it, create the
feature branch, and push it with upstream tracking.

Repos are processed independently; a failure in one never stops the
others. The ticket and branch are recorded for 'devctl status' when at
least one repo succeeds.`,
		Example: `  devctl start ABC-123                   # feature/ABC-123 in every repo
  devctl start ABC-123 --base develop    # branch off develop everywhere
  devctl start ABC-123 --force           # re-push an existing local branch
  devctl start ABC-123 --repos api,web   # only these repos`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStart(cmd.Context(), workDir, startParams{
				ticket:    args[0],
				base:      base,
				force:     force,
				repoNames: repoNames,
			})
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "Override the base branch for every repo")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Re-use a branch that already exists locally instead of erroring")
	cmd.Flags().StringSliceVarP(&repoNames, "repos", "r", nil, "Only operate on these repos")

	cmd.RegisterFlagCompletionFunc("repos", completeRepoNames)

	return cmd
}
