package main

import (
	"github.com/spf13/cobra"
)

var envFlag string

var rootCmd = &cobra.Command{
	Use:   "monolith-service",
	Short: "CRUD API for projects, inventory and contacts",
	Long: `monolith-service serves a JSON API for projects, inventory items and
contacts under /api, plus a small dashboard at /.

Running without a subcommand starts the HTTP server.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "", "config environment (loads configs/config.<env>.yaml, defaults to $ENV or local)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)
}
