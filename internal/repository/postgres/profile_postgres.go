package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"resumeapi/internal/model"
	"resumeapi/internal/repository"
)

// ProfilePostgres is a PostgreSQL implementation of repository.ProfileRepository.
type ProfilePostgres struct {
	db *sql.DB
}

// NewProfilePostgres creates a new ProfilePostgres repository.
func NewProfilePostgres(db *sql.DB) *ProfilePostgres {
	return &ProfilePostgres{db: db}
}

var _ repository.ProfileRepository = (*ProfilePostgres)(nil)

// FindByUser returns the profile of userID or sql.ErrNoRows.
func (r *ProfilePostgres) FindByUser(ctx context.Context, userID string) (*model.UserProfile, error) {
	const q = `
		SELECT user_id, preferences, subscription, updated_at
		FROM user_profiles
		WHERE user_id = $1
	`
	return scanProfile(r.db.QueryRowContext(ctx, q, userID))
}

// Upsert inserts or replaces the profile keyed by user ID.
func (r *ProfilePostgres) Upsert(ctx context.Context, p *model.UserProfile) (*model.UserProfile, error) {
	const q = `
		INSERT INTO user_profiles (user_id, preferences, subscription, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET preferences = EXCLUDED.preferences,
		    subscription = EXCLUDED.subscription,
		    updated_at = EXCLUDED.updated_at
		RETURNING user_id, preferences, subscription, updated_at
	`
	prefs, err := json.Marshal(p.Preferences)
	if err != nil {
		return nil, fmt.Errorf("marshal preferences: %w", err)
	}
	sub, err := json.Marshal(p.Subscription)
	if err != nil {
		return nil, fmt.Errorf("marshal subscription: %w", err)
	}
	return scanProfile(r.db.QueryRowContext(ctx, q, p.UserID, string(prefs), string(sub), p.UpdatedAt))
}

func scanProfile(row rowScanner) (*model.UserProfile, error) {
	var out model.UserProfile
	var prefs, sub []byte
	if err := row.Scan(&out.UserID, &prefs, &sub, &out.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(prefs, &out.Preferences); err != nil {
		return nil, fmt.Errorf("decode preferences: %w", err)
	}
	if err := json.Unmarshal(sub, &out.Subscription); err != nil {
		return nil, fmt.Errorf("decode subscription: %w", err)
	}
	return &out, nil
}
