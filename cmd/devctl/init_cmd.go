package main

import (
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Discover git repos and write devctl.toml",
		Long: `Scan the working directory for git repositories and write a
devctl.toml registry with each repo's path and detected base branch.`,
		Example: `  devctl init           # scan and write devctl.toml
  devctl init --force   # overwrite an existing devctl.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd.Context(), workDir, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing devctl.toml")

	return cmd
}
