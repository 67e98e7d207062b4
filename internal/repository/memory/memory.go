// Package memory holds process-local repository implementations used when
// STORE_DRIVER=memory and by tests that want real persistence semantics
// without a database.
package memory

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"resumeapi/internal/model"
	"resumeapi/internal/repository"
)

// ResumeStore keeps resumes in a map guarded by an RWMutex.
type ResumeStore struct {
	mu   sync.RWMutex
	rows map[string]model.Resume
}

func NewResumeStore() *ResumeStore {
	return &ResumeStore{rows: make(map[string]model.Resume)}
}

var _ repository.ResumeRepository = (*ResumeStore)(nil)

func (s *ResumeStore) Create(_ context.Context, r *model.Resume) (*model.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := r.Clone()
	s.rows[r.ID] = stored
	out := stored.Clone()
	return &out, nil
}

func (s *ResumeStore) FindByID(_ context.Context, id string) (*model.Resume, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	out := r.Clone()
	return &out, nil
}

func (s *ResumeStore) ListByUser(_ context.Context, userID string) ([]model.Resume, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]model.Resume, 0)
	for _, r := range s.rows {
		if r.UserID == userID {
			items = append(items, r.Clone())
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].LastModified.Equal(items[j].LastModified) {
			return items[i].ID > items[j].ID
		}
		return items[i].LastModified.After(items[j].LastModified)
	})
	return items, nil
}

func (s *ResumeStore) Update(_ context.Context, id string, u model.ResumeUpdate, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rows[id]
	if !ok {
		return sql.ErrNoRows
	}
	r.Apply(u, at)
	s.rows[id] = r
	return nil
}

func (s *ResumeStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.rows, id)
	return nil
}

// TemplateStore keeps the template catalog in insertion order.
type TemplateStore struct {
	mu    sync.RWMutex
	items []model.Template
}

func NewTemplateStore() *TemplateStore {
	return &TemplateStore{}
}

var _ repository.TemplateRepository = (*TemplateStore)(nil)

func (s *TemplateStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), nil
}

func (s *TemplateStore) List(_ context.Context) ([]model.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Template, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *TemplateStore) FindByID(_ context.Context, id string) (*model.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.items {
		if t.ID == id {
			out := t
			return &out, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *TemplateStore) Create(_ context.Context, t *model.Template) (*model.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, *t)
	out := *t
	return &out, nil
}

// ProfileStore keeps user profiles keyed by user ID.
type ProfileStore struct {
	mu   sync.RWMutex
	rows map[string]model.UserProfile
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{rows: make(map[string]model.UserProfile)}
}

var _ repository.ProfileRepository = (*ProfileStore)(nil)

func (s *ProfileStore) FindByUser(_ context.Context, userID string) (*model.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.rows[userID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &p, nil
}

func (s *ProfileStore) Upsert(_ context.Context, p *model.UserProfile) (*model.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows[p.UserID] = *p
	out := *p
	return &out, nil
}
