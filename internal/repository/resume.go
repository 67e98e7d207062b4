package repository

import (
	"context"
	"time"

	"resumeapi/internal/model"
)

// ResumeRepository defines data access for resumes. Ownership rules live in the service layer;
// implementations only persist. A missing row is reported as sql.ErrNoRows.
type ResumeRepository interface {
	// Create inserts a new resume and returns the stored record.
	Create(ctx context.Context, r *model.Resume) (*model.Resume, error)

	// FindByID returns a resume by its ID.
	FindByID(ctx context.Context, id string) (*model.Resume, error)

	// ListByUser returns the user's resumes, most recently modified first.
	ListByUser(ctx context.Context, userID string) ([]model.Resume, error)

	// Update writes the keys present in u and sets last_modified to at.
	// Each present section replaces the stored sequence in a single statement.
	Update(ctx context.Context, id string, u model.ResumeUpdate, at time.Time) error

	// Delete removes a resume by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}

// TemplateRepository defines data access for the template catalog.
type TemplateRepository interface {
	Count(ctx context.Context) (int, error)
	List(ctx context.Context) ([]model.Template, error)
	FindByID(ctx context.Context, id string) (*model.Template, error)
	Create(ctx context.Context, t *model.Template) (*model.Template, error)
}

// ProfileRepository defines data access for user profiles.
type ProfileRepository interface {
	FindByUser(ctx context.Context, userID string) (*model.UserProfile, error)
	Upsert(ctx context.Context, p *model.UserProfile) (*model.UserProfile, error)
}
