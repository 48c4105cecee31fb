package main

import (
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	var repoNames []string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show branch synchronization status for all configured repos",
		Long: `Compare every repo against the branch recorded by the last
'devctl start': the checked-out branch must match, the branch must
exist on origin, and the working tree must be clean.`,
		Example: `  devctl status                 # check every repo
  devctl status --repos api     # check a subset`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd.Context(), workDir, repoNames)
		},
	}

	cmd.Flags().StringSliceVarP(&repoNames, "repos", "r", nil, "Only check these repos")

	cmd.RegisterFlagCompletionFunc("repos", completeRepoNames)

	return cmd
}
