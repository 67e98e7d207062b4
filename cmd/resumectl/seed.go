package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"resumeapi/internal/config"
	"resumeapi/internal/database"
	"resumeapi/internal/repository/postgres"
	"resumeapi/internal/service"
)

var seedCmd = &cobra.Command{
	Use:   "seed-templates",
	Short: "Insert the default template catalog",
	Long:  "Insert the built-in templates when the templates table is empty. Existing rows are left alone.",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()

	db, err := database.NewPostgres(cmd.Context(), cfg.Database)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer db.Close()

	n, err := service.NewTemplateService(postgres.NewTemplatePostgres(db)).Seed(cmd.Context())
	if err != nil {
		return fmt.Errorf("seed templates: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "inserted %d templates\n", n)
	return nil
}
