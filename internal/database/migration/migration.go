package migration

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_templates",
		SQL: `CREATE TABLE IF NOT EXISTS templates (
  id          TEXT        PRIMARY KEY,
  name        TEXT        NOT NULL,
  description TEXT        NOT NULL DEFAULT '',
  category    TEXT        NOT NULL DEFAULT '',
  config      JSONB       NOT NULL DEFAULT '{}'::jsonb,
  is_premium  BOOLEAN     NOT NULL DEFAULT false,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_resumes",
		SQL: `CREATE TABLE IF NOT EXISTS resumes (
  id             TEXT        PRIMARY KEY,
  user_id        TEXT        NOT NULL,
  title          TEXT        NOT NULL,
  template_id    TEXT        NOT NULL,
  personal_info  JSONB       NOT NULL DEFAULT '{}'::jsonb,
  experience     JSONB       NOT NULL DEFAULT '[]'::jsonb,
  education      JSONB       NOT NULL DEFAULT '[]'::jsonb,
  skills         JSONB       NOT NULL DEFAULT '[]'::jsonb,
  projects       JSONB       NOT NULL DEFAULT '[]'::jsonb,
  certifications JSONB       NOT NULL DEFAULT '[]'::jsonb,
  languages      JSONB       NOT NULL DEFAULT '[]'::jsonb,
  is_public      BOOLEAN     NOT NULL DEFAULT false,
  last_modified  TIMESTAMPTZ NOT NULL DEFAULT now(),
  created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_resumes_user_last_modified",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_resumes_user_last_modified ON resumes (user_id, last_modified DESC);`,
	},
	{
		Name: "create_table_user_profiles",
		SQL: `CREATE TABLE IF NOT EXISTS user_profiles (
  user_id      TEXT        PRIMARY KEY,
  preferences  JSONB       NOT NULL DEFAULT '{}'::jsonb,
  subscription JSONB       NOT NULL DEFAULT '{}'::jsonb,
  updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
}

// EnsureMigrated checks if the 'resumes' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *slog.Logger, dbHost string) error {
	start := time.Now()
	log = log.With("component", "database", "db_host", dbHost)

	log.Info("db_migration_check", "status", "starting")

	var exists bool
	query := "SELECT to_regclass('public.resumes') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			"status", "error",
			"error_message", fmt.Sprintf("failed to check sentinel table: %v", err),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			"status", "success",
			"detail", "schema already exists, skipping migration",
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}

	log.Info("db_migration_start", "status", "in_progress")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				"status", "error",
				"migration_step", step.Name,
				"error_message", err.Error(),
				"duration_ms", time.Since(start).Milliseconds(),
				"step_duration_ms", time.Since(stepStart).Milliseconds(),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			"status", "success",
			"migration_step", step.Name,
			"step_duration_ms", time.Since(stepStart).Milliseconds(),
		)
	}

	log.Info("db_migration_success",
		"status", "success",
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
