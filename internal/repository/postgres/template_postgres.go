package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"resumeapi/internal/model"
	"resumeapi/internal/repository"
)

// TemplatePostgres is a PostgreSQL implementation of repository.TemplateRepository.
type TemplatePostgres struct {
	db *sql.DB
}

// NewTemplatePostgres creates a new TemplatePostgres repository.
func NewTemplatePostgres(db *sql.DB) *TemplatePostgres {
	return &TemplatePostgres{db: db}
}

var _ repository.TemplateRepository = (*TemplatePostgres)(nil)

// Count returns the number of catalog rows.
func (r *TemplatePostgres) Count(ctx context.Context) (int, error) {
	const q = `SELECT COUNT(*) FROM templates`
	var n int
	if err := r.db.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// List returns the whole catalog in insertion order.
func (r *TemplatePostgres) List(ctx context.Context) ([]model.Template, error) {
	const q = `
		SELECT id, name, description, category, config, is_premium, created_at
		FROM templates
		ORDER BY created_at ASC, name ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Template, 0)
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID fetches a single template by its ID.
func (r *TemplatePostgres) FindByID(ctx context.Context, id string) (*model.Template, error) {
	const q = `
		SELECT id, name, description, category, config, is_premium, created_at
		FROM templates
		WHERE id = $1
	`
	return scanTemplate(r.db.QueryRowContext(ctx, q, id))
}

// Create inserts a catalog entry and returns the stored record.
func (r *TemplatePostgres) Create(ctx context.Context, t *model.Template) (*model.Template, error) {
	const q = `
		INSERT INTO templates (id, name, description, category, config, is_premium, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, description, category, config, is_premium, created_at
	`
	cfg, err := json.Marshal(t.Config)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return scanTemplate(r.db.QueryRowContext(ctx, q,
		t.ID,
		t.Name,
		t.Description,
		t.Category,
		string(cfg),
		t.IsPremium,
		t.CreatedAt,
	))
}

func scanTemplate(row rowScanner) (*model.Template, error) {
	var out model.Template
	var cfg []byte
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.Description,
		&out.Category,
		&cfg,
		&out.IsPremium,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(cfg) > 0 {
		if err := json.Unmarshal(cfg, &out.Config); err != nil {
			return nil, fmt.Errorf("decode config: %w", err)
		}
	}
	return &out, nil
}
