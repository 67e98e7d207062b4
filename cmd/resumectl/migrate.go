package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"resumeapi/internal/config"
	"resumeapi/internal/database"
	"resumeapi/internal/database/migration"
	"resumeapi/internal/logging"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  "Connect to PostgreSQL using the DB_* environment variables and apply the schema if it is missing.",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	log := logging.New(cmd.ErrOrStderr(), cfg.Location(), cfg.LogLevel)

	db, err := database.NewPostgres(cmd.Context(), cfg.Database)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(cmd.Context(), db, log, cfg.Database.Host); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
	return nil
}
