package main

import (
	"fmt"

	"monolith-service/internal/app"
	"monolith-service/internal/config"
	"monolith-service/internal/logger"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the projects, inventory_items and contacts tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFlag)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		log := logger.NewWithServiceContext(app.ServiceName, app.Version)
		if err := app.Migrate(cmd.Context(), cfg, log); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
		return nil
	},
}
