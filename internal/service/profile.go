package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"resumeapi/internal/model"
	"resumeapi/internal/repository"
)

// ProfileService reads and writes per-user preferences.
type ProfileService interface {
	// Get returns the caller's profile, or the defaults if none was ever stored.
	Get(ctx context.Context, userID string) (*model.UserProfile, error)

	// UpdatePreferences replaces the caller's preferences. The subscription is left untouched.
	UpdatePreferences(ctx context.Context, userID string, prefs model.Preferences) (*model.UserProfile, error)
}

type profileService struct {
	repo repository.ProfileRepository
	now  func() time.Time
}

func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return &profileService{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *profileService) Get(ctx context.Context, userID string) (*model.UserProfile, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	p, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			def := model.DefaultProfile(userID)
			return &def, nil
		}
		return nil, err
	}
	return p, nil
}

func (s *profileService) UpdatePreferences(ctx context.Context, userID string, prefs model.Preferences) (*model.UserProfile, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(prefs); err != nil {
		return nil, invalid(err)
	}
	p.Preferences = prefs
	p.UpdatedAt = s.now()

	stored, err := s.repo.Upsert(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return stored, nil
}
