package mocks

import (
	"context"

	"resumeapi/internal/model"
	"resumeapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockResumeService struct {
	mock.Mock
}

func (m *MockResumeService) List(ctx context.Context, userID string) (*service.ResumeListResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ResumeListResult), args.Error(1)
}

func (m *MockResumeService) Get(ctx context.Context, userID, id string) (*model.Resume, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resume), args.Error(1)
}

func (m *MockResumeService) Create(ctx context.Context, userID, title, templateID string) (string, error) {
	args := m.Called(ctx, userID, title, templateID)
	return args.String(0), args.Error(1)
}

func (m *MockResumeService) Update(ctx context.Context, userID, id string, u model.ResumeUpdate) error {
	args := m.Called(ctx, userID, id, u)
	return args.Error(0)
}

func (m *MockResumeService) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

type MockTemplateService struct {
	mock.Mock
}

func (m *MockTemplateService) List(ctx context.Context) ([]model.Template, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Template), args.Error(1)
}

func (m *MockTemplateService) Get(ctx context.Context, id string) (*model.Template, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Template), args.Error(1)
}

func (m *MockTemplateService) Seed(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Get(ctx context.Context, userID string) (*model.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProfile), args.Error(1)
}

func (m *MockProfileService) UpdatePreferences(ctx context.Context, userID string, prefs model.Preferences) (*model.UserProfile, error) {
	args := m.Called(ctx, userID, prefs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProfile), args.Error(1)
}

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Preview(ctx context.Context, userID, id string) ([]byte, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockExportService) Export(ctx context.Context, userID, id string) (*service.ExportResult, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportResult), args.Error(1)
}
