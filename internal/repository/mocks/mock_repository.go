package mocks

import (
	"context"
	"time"

	"resumeapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockResumeRepository struct {
	mock.Mock
}

func (m *MockResumeRepository) Create(ctx context.Context, r *model.Resume) (*model.Resume, error) {
	args := m.Called(ctx, r)
	if f, ok := args.Get(0).(func(context.Context, *model.Resume) *model.Resume); ok {
		return f(ctx, r), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resume), args.Error(1)
}

func (m *MockResumeRepository) FindByID(ctx context.Context, id string) (*model.Resume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resume), args.Error(1)
}

func (m *MockResumeRepository) ListByUser(ctx context.Context, userID string) ([]model.Resume, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Resume), args.Error(1)
}

func (m *MockResumeRepository) Update(ctx context.Context, id string, u model.ResumeUpdate, at time.Time) error {
	args := m.Called(ctx, id, u, at)
	return args.Error(0)
}

func (m *MockResumeRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTemplateRepository struct {
	mock.Mock
}

func (m *MockTemplateRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockTemplateRepository) List(ctx context.Context) ([]model.Template, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Template), args.Error(1)
}

func (m *MockTemplateRepository) FindByID(ctx context.Context, id string) (*model.Template, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Template), args.Error(1)
}

func (m *MockTemplateRepository) Create(ctx context.Context, t *model.Template) (*model.Template, error) {
	args := m.Called(ctx, t)
	if f, ok := args.Get(0).(func(context.Context, *model.Template) *model.Template); ok {
		return f(ctx, t), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Template), args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByUser(ctx context.Context, userID string) (*model.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) Upsert(ctx context.Context, p *model.UserProfile) (*model.UserProfile, error) {
	args := m.Called(ctx, p)
	if f, ok := args.Get(0).(func(context.Context, *model.UserProfile) *model.UserProfile); ok {
		return f(ctx, p), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProfile), args.Error(1)
}
