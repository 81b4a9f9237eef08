package main

import (
	"fmt"

	"monolith-service/internal/app"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n", app.ServiceName, app.Version)
		fmt.Fprintf(out, "commit: %s\n", app.GitCommit)
		fmt.Fprintf(out, "built:  %s\n", app.BuildTime)
	},
}
