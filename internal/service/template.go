package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"resumeapi/internal/model"
	"resumeapi/internal/repository"
)

// TemplateService exposes the read-only template catalog.
type TemplateService interface {
	List(ctx context.Context) ([]model.Template, error)
	Get(ctx context.Context, id string) (*model.Template, error)

	// Seed inserts the default catalog when the table is empty and reports how many rows it inserted.
	// Any existing row, whatever its content, makes it a no-op.
	Seed(ctx context.Context) (int, error)
}

type templateService struct {
	repo repository.TemplateRepository
	now  func() time.Time
}

func NewTemplateService(repo repository.TemplateRepository) TemplateService {
	return &templateService{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *templateService) List(ctx context.Context) ([]model.Template, error) {
	return s.repo.List(ctx)
}

func (s *templateService) Get(ctx context.Context, id string) (*model.Template, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *templateService) Seed(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count templates: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	// Stagger created_at so listing order matches catalog order.
	base := s.now()
	inserted := 0
	for i, t := range model.DefaultTemplates() {
		t.ID = uuid.New().String()
		t.CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
		if _, err := s.repo.Create(ctx, &t); err != nil {
			return inserted, fmt.Errorf("seed template %q: %w", t.Name, err)
		}
		inserted++
	}
	return inserted, nil
}
