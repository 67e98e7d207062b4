package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resumeapi/internal/model"
	"resumeapi/internal/repository"
	"resumeapi/internal/storage"
)

// RecentWindow is how far back a resume counts as "recently updated" on the dashboard.
const RecentWindow = 7 * 24 * time.Hour

// ResumeListResult is the service-level DTO for a user's resume list.
type ResumeListResult struct {
	Items           []model.Resume `json:"data"`
	Total           int            `json:"total"`
	RecentlyUpdated int            `json:"recently_updated"`
}

// ResumeService defines the resume use cases. Every call is scoped to the calling user;
// an empty userID means no session and yields ErrUnauthenticated.
type ResumeService interface {
	// List returns the caller's resumes, most recently modified first.
	List(ctx context.Context, userID string) (*ResumeListResult, error)

	// Get returns a resume. Missing and foreign resumes both yield ErrNotFound.
	Get(ctx context.Context, userID, id string) (*model.Resume, error)

	// Create stores an empty resume and returns its new ID.
	Create(ctx context.Context, userID, title, templateID string) (string, error)

	// Update merges the keys present in u and stamps last_modified, even for an empty update.
	// It fails with ErrNotFound when missing and ErrForbidden when owned by someone else.
	Update(ctx context.Context, userID, id string, u model.ResumeUpdate) error

	// Delete removes the resume and its exported PDF. Failures leave the store unchanged.
	Delete(ctx context.Context, userID, id string) error
}

type resumeService struct {
	repo  repository.ResumeRepository
	store storage.Storage
	now   func() time.Time
}

// NewResumeService constructs a ResumeService. store may be nil when no object storage is configured.
func NewResumeService(repo repository.ResumeRepository, store storage.Storage) ResumeService {
	return &resumeService{
		repo:  repo,
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *resumeService) List(ctx context.Context, userID string) (*ResumeListResult, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	recent := 0
	for _, r := range items {
		if r.RecentlyUpdated(now, RecentWindow) {
			recent++
		}
	}
	return &ResumeListResult{Items: items, Total: len(items), RecentlyUpdated: recent}, nil
}

func (s *resumeService) Get(ctx context.Context, userID, id string) (*model.Resume, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if id == "" {
		return nil, ErrIDRequired
	}
	res, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.UserID != userID {
		return nil, ErrNotFound
	}
	return res, nil
}

func (s *resumeService) Create(ctx context.Context, userID, title, templateID string) (string, error) {
	if userID == "" {
		return "", ErrUnauthenticated
	}
	if strings.TrimSpace(title) == "" || templateID == "" {
		return "", fmt.Errorf("%w: title and template_id are required", ErrInvalidInput)
	}

	res := model.NewResume(userID, title, templateID, s.now())
	res.ID = uuid.New().String()

	stored, err := s.repo.Create(ctx, res)
	if err != nil {
		return "", fmt.Errorf("create resume: %w", err)
	}
	return stored.ID, nil
}

func (s *resumeService) Update(ctx context.Context, userID, id string, u model.ResumeUpdate) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	if err := ValidateUpdate(u); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, u, s.now()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update resume: %w", err)
	}
	return nil
}

func (s *resumeService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	// Remove the export first; if that fails the row stays and the delete can be retried.
	if s.store != nil {
		if err := s.store.Delete(ctx, storage.ExportKey(id)); err != nil {
			return fmt.Errorf("delete export: %w", err)
		}
	}
	return s.repo.Delete(ctx, id)
}

// owned loads a resume for a write by userID.
func (s *resumeService) owned(ctx context.Context, userID, id string) (*model.Resume, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if id == "" {
		return nil, ErrIDRequired
	}
	res, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.UserID != userID {
		return nil, ErrForbidden
	}
	return res, nil
}

func (s *resumeService) find(ctx context.Context, id string) (*model.Resume, error) {
	res, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

// ValidateUpdate applies the field rules and item-id uniqueness that Update enforces.
// Failures match ErrInvalidInput.
func ValidateUpdate(u model.ResumeUpdate) error {
	if err := validate.Struct(u); err != nil {
		return invalid(err)
	}
	if err := u.CheckItemIDs(); err != nil {
		return invalid(err)
	}
	return nil
}
