package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"resumeapi/internal/model"
	"resumeapi/internal/repository"
)

// ResumePostgres is a PostgreSQL implementation of repository.ResumeRepository.
// Sections are stored as JSONB columns so a section write is a single column assignment.
type ResumePostgres struct {
	db *sql.DB
}

// NewResumePostgres creates a new ResumePostgres repository.
func NewResumePostgres(db *sql.DB) *ResumePostgres {
	return &ResumePostgres{db: db}
}

var _ repository.ResumeRepository = (*ResumePostgres)(nil)

const resumeColumns = `id, user_id, title, template_id, personal_info, experience, education, skills,
		projects, certifications, languages, is_public, last_modified, created_at`

// Create inserts a new resume row and returns the stored record.
func (r *ResumePostgres) Create(ctx context.Context, res *model.Resume) (*model.Resume, error) {
	q := `
		INSERT INTO resumes (` + resumeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + resumeColumns

	sections, err := marshalSections(res)
	if err != nil {
		return nil, err
	}
	args := []any{res.ID, res.UserID, res.Title, res.TemplateID}
	args = append(args, sections...)
	args = append(args, res.IsPublic, res.LastModified, res.CreatedAt)

	return scanResume(r.db.QueryRowContext(ctx, q, args...))
}

// FindByID fetches a single resume by its ID.
func (r *ResumePostgres) FindByID(ctx context.Context, id string) (*model.Resume, error) {
	q := `
		SELECT ` + resumeColumns + `
		FROM resumes
		WHERE id = $1
	`
	return scanResume(r.db.QueryRowContext(ctx, q, id))
}

// ListByUser returns a user's resumes ordered by most recent modification.
func (r *ResumePostgres) ListByUser(ctx context.Context, userID string) ([]model.Resume, error) {
	q := `
		SELECT ` + resumeColumns + `
		FROM resumes
		WHERE user_id = $1
		ORDER BY last_modified DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Resume, 0)
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update assigns every key present in u plus last_modified in one statement.
// It returns sql.ErrNoRows when no row matched.
func (r *ResumePostgres) Update(ctx context.Context, id string, u model.ResumeUpdate, at time.Time) error {
	sets := make([]string, 0, 10)
	args := make([]any, 0, 11)
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	addJSON := func(col string, v any) error {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", col, err)
		}
		add(col, string(b))
		return nil
	}

	if u.Title != nil {
		add("title", *u.Title)
	}
	if u.TemplateID != nil {
		add("template_id", *u.TemplateID)
	}
	jsonCols := []struct {
		col     string
		present bool
		value   any
	}{
		{"personal_info", u.PersonalInfo != nil, u.PersonalInfo},
		{"experience", u.Experience != nil, u.Experience},
		{"education", u.Education != nil, u.Education},
		{"skills", u.Skills != nil, u.Skills},
		{"projects", u.Projects != nil, u.Projects},
		{"certifications", u.Certifications != nil, u.Certifications},
		{"languages", u.Languages != nil, u.Languages},
	}
	for _, c := range jsonCols {
		if !c.present {
			continue
		}
		if err := addJSON(c.col, c.value); err != nil {
			return err
		}
	}
	add("last_modified", at)

	args = append(args, id)
	q := fmt.Sprintf(`UPDATE resumes SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a resume by ID. It does not return an error if the row does not exist.
func (r *ResumePostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM resumes WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (*model.Resume, error) {
	var out model.Resume
	var personal, exp, edu, skills, projects, certs, langs []byte
	if err := row.Scan(
		&out.ID,
		&out.UserID,
		&out.Title,
		&out.TemplateID,
		&personal,
		&exp,
		&edu,
		&skills,
		&projects,
		&certs,
		&langs,
		&out.IsPublic,
		&out.LastModified,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}

	targets := []struct {
		name string
		raw  []byte
		dst  any
	}{
		{"personal_info", personal, &out.PersonalInfo},
		{"experience", exp, &out.Experience},
		{"education", edu, &out.Education},
		{"skills", skills, &out.Skills},
		{"projects", projects, &out.Projects},
		{"certifications", certs, &out.Certifications},
		{"languages", langs, &out.Languages},
	}
	for _, t := range targets {
		if len(t.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(t.raw, t.dst); err != nil {
			return nil, fmt.Errorf("decode %s: %w", t.name, err)
		}
	}
	return &out, nil
}

func marshalSections(r *model.Resume) ([]any, error) {
	values := []any{
		r.PersonalInfo,
		emptyIfNil(r.Experience),
		emptyIfNil(r.Education),
		emptyIfNil(r.Skills),
		emptyIfNil(r.Projects),
		emptyIfNil(r.Certifications),
		emptyIfNil(r.Languages),
	}
	out := make([]any, 0, len(values))
	for _, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal section: %w", err)
		}
		out = append(out, string(b))
	}
	return out, nil
}

func emptyIfNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
