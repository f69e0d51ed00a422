package cmd

import (
	"fmt"
	"log"

	"naukri-api/config"
	"naukri-api/internal/database"
	"naukri-api/internal/storage/postgres"

	"github.com/spf13/cobra"
)

// migrateCmd applies the embedded schema to the configured PostgreSQL database.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the PostgreSQL schema",
	Long: `Apply the embedded schema to the database configured under "database".
The statements are idempotent, so running the command twice is harmless.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		pool, err := database.NewConnectionPool(cmd.Context(), cfg.DB)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := postgres.Migrate(cmd.Context(), pool); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		log.Println("Schema applied")
		return nil
	},
}
