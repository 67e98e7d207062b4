package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"resumeapi/internal/model"
	"resumeapi/internal/repository/memory"
	repoMocks "resumeapi/internal/repository/mocks"
	"resumeapi/internal/storage"
	storeMocks "resumeapi/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestResumeService(repo *repoMocks.MockResumeRepository, store *storeMocks.MockStorage) *resumeService {
	var st storage.Storage
	if store != nil {
		st = store
	}
	svc := NewResumeService(repo, st).(*resumeService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestResumeService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("unauthenticated", func(t *testing.T) {
		svc := newTestResumeService(new(repoMocks.MockResumeRepository), new(storeMocks.MockStorage))
		_, err := svc.List(ctx, "")
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("counts recently updated", func(t *testing.T) {
		mRepo := new(repoMocks.MockResumeRepository)
		mRepo.On("ListByUser", ctx, "user-1").Return([]model.Resume{
			{ID: "a", LastModified: fixedNow.Add(-time.Hour)},
			{ID: "b", LastModified: fixedNow.Add(-6 * 24 * time.Hour)},
			{ID: "c", LastModified: fixedNow.Add(-30 * 24 * time.Hour)},
		}, nil)

		res, err := newTestResumeService(mRepo, nil).List(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, 3, res.Total)
		assert.Equal(t, 2, res.RecentlyUpdated)
		mRepo.AssertExpectations(t)
	})
}

func TestResumeService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		userID     string
		id         string
		setupMocks func(mRepo *repoMocks.MockResumeRepository)
		wantErr    error
	}{
		{
			name:   "owner reads",
			userID: "user-1",
			id:     "r1",
			setupMocks: func(mRepo *repoMocks.MockResumeRepository) {
				mRepo.On("FindByID", ctx, "r1").Return(&model.Resume{ID: "r1", UserID: "user-1"}, nil)
			},
		},
		{
			name:    "no session",
			id:      "r1",
			wantErr: ErrUnauthenticated,
		},
		{
			name:    "empty id",
			userID:  "user-1",
			wantErr: ErrIDRequired,
		},
		{
			name:   "missing",
			userID: "user-1",
			id:     "r1",
			setupMocks: func(mRepo *repoMocks.MockResumeRepository) {
				mRepo.On("FindByID", ctx, "r1").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name:   "someone else's resume reads as missing",
			userID: "user-2",
			id:     "r1",
			setupMocks: func(mRepo *repoMocks.MockResumeRepository) {
				mRepo.On("FindByID", ctx, "r1").Return(&model.Resume{ID: "r1", UserID: "user-1"}, nil)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockResumeRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(mRepo)
			}

			res, err := newTestResumeService(mRepo, nil).Get(ctx, tt.userID, tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.id, res.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestResumeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("initializes an empty private resume", func(t *testing.T) {
		mRepo := new(repoMocks.MockResumeRepository)
		mRepo.On("Create", ctx, mock.MatchedBy(func(r *model.Resume) bool {
			return r.ID != "" &&
				r.UserID == "user-1" &&
				r.Title == "Backend CV" &&
				r.TemplateID == "tpl-1" &&
				!r.IsPublic &&
				len(r.Experience) == 0 && r.Experience != nil &&
				r.LastModified.Equal(fixedNow)
		})).Return(func(_ context.Context, r *model.Resume) *model.Resume { return r }, nil)

		id, err := newTestResumeService(mRepo, nil).Create(ctx, "user-1", "Backend CV", "tpl-1")

		require.NoError(t, err)
		assert.NotEmpty(t, id)
		mRepo.AssertExpectations(t)
	})

	t.Run("blank title", func(t *testing.T) {
		_, err := newTestResumeService(new(repoMocks.MockResumeRepository), nil).Create(ctx, "user-1", "  ", "tpl-1")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockResumeRepository)
		mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))

		_, err := newTestResumeService(mRepo, nil).Create(ctx, "user-1", "CV", "tpl-1")
		assert.EqualError(t, err, "create resume: db fail")
	})
}

func TestResumeService_Update(t *testing.T) {
	ctx := context.Background()
	owned := &model.Resume{ID: "r1", UserID: "user-1"}

	tests := []struct {
		name       string
		userID     string
		update     model.ResumeUpdate
		setupMocks func(mRepo *repoMocks.MockResumeRepository)
		wantErr    error
	}{
		{
			name:   "section write stamps now",
			userID: "user-1",
			update: model.ResumeUpdate{Skills: []model.SkillGroup{{ID: "s1", Category: "Go"}}},
			setupMocks: func(mRepo *repoMocks.MockResumeRepository) {
				mRepo.On("FindByID", ctx, "r1").Return(owned, nil)
				mRepo.On("Update", ctx, "r1", model.ResumeUpdate{Skills: []model.SkillGroup{{ID: "s1", Category: "Go"}}}, fixedNow).Return(nil)
			},
		},
		{
			name:   "empty update still writes",
			userID: "user-1",
			setupMocks: func(mRepo *repoMocks.MockResumeRepository) {
				mRepo.On("FindByID", ctx, "r1").Return(owned, nil)
				mRepo.On("Update", ctx, "r1", model.ResumeUpdate{}, fixedNow).Return(nil)
			},
		},
		{
			name:   "foreign resume",
			userID: "user-2",
			setupMocks: func(mRepo *repoMocks.MockResumeRepository) {
				mRepo.On("FindByID", ctx, "r1").Return(owned, nil)
			},
			wantErr: ErrForbidden,
		},
		{
			name:   "missing resume",
			userID: "user-1",
			setupMocks: func(mRepo *repoMocks.MockResumeRepository) {
				mRepo.On("FindByID", ctx, "r1").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name:   "duplicate item ids",
			userID: "user-1",
			update: model.ResumeUpdate{Languages: []model.Language{{ID: "l1"}, {ID: "l1"}}},
			setupMocks: func(mRepo *repoMocks.MockResumeRepository) {
				mRepo.On("FindByID", ctx, "r1").Return(owned, nil)
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:   "item without id",
			userID: "user-1",
			update: model.ResumeUpdate{Experience: []model.Experience{{Company: "x"}}},
			setupMocks: func(mRepo *repoMocks.MockResumeRepository) {
				mRepo.On("FindByID", ctx, "r1").Return(owned, nil)
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:   "bad email",
			userID: "user-1",
			update: model.ResumeUpdate{PersonalInfo: &model.PersonalInfo{Email: "not-an-email"}},
			setupMocks: func(mRepo *repoMocks.MockResumeRepository) {
				mRepo.On("FindByID", ctx, "r1").Return(owned, nil)
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:   "row vanished between read and write",
			userID: "user-1",
			setupMocks: func(mRepo *repoMocks.MockResumeRepository) {
				mRepo.On("FindByID", ctx, "r1").Return(owned, nil)
				mRepo.On("Update", ctx, "r1", model.ResumeUpdate{}, fixedNow).Return(sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockResumeRepository)
			tt.setupMocks(mRepo)

			err := newTestResumeService(mRepo, nil).Update(ctx, tt.userID, "r1", tt.update)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestResumeService_Delete(t *testing.T) {
	ctx := context.Background()
	owned := &model.Resume{ID: "r1", UserID: "user-1"}

	tests := []struct {
		name       string
		userID     string
		setupMocks func(mRepo *repoMocks.MockResumeRepository, mStore *storeMocks.MockStorage)
		wantErr    error
		wantErrMsg string
	}{
		{
			name:   "removes export then row",
			userID: "user-1",
			setupMocks: func(mRepo *repoMocks.MockResumeRepository, mStore *storeMocks.MockStorage) {
				mRepo.On("FindByID", ctx, "r1").Return(owned, nil)
				mStore.On("Delete", ctx, "exports/r1.pdf").Return(nil)
				mRepo.On("Delete", ctx, "r1").Return(nil)
			},
		},
		{
			name:   "foreign resume is forbidden",
			userID: "user-2",
			setupMocks: func(mRepo *repoMocks.MockResumeRepository, mStore *storeMocks.MockStorage) {
				mRepo.On("FindByID", ctx, "r1").Return(owned, nil)
			},
			wantErr: ErrForbidden,
		},
		{
			name:   "storage failure keeps the row",
			userID: "user-1",
			setupMocks: func(mRepo *repoMocks.MockResumeRepository, mStore *storeMocks.MockStorage) {
				mRepo.On("FindByID", ctx, "r1").Return(owned, nil)
				mStore.On("Delete", ctx, "exports/r1.pdf").Return(errors.New("s3 down"))
			},
			wantErrMsg: "delete export: s3 down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockResumeRepository)
			mStore := new(storeMocks.MockStorage)
			tt.setupMocks(mRepo, mStore)

			err := newTestResumeService(mRepo, mStore).Delete(ctx, tt.userID, "r1")

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				assert.EqualError(t, err, tt.wantErrMsg)
			default:
				assert.NoError(t, err)
			}
			mRepo.AssertExpectations(t)
			mStore.AssertExpectations(t)
		})
	}
}

func TestResumeService_DeleteForeignLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewResumeStore()
	svc := NewResumeService(repo, nil)

	id, err := svc.Create(ctx, "owner", "CV", "tpl-1")
	require.NoError(t, err)

	err = svc.Delete(ctx, "intruder", id)
	require.ErrorIs(t, err, ErrForbidden)

	still, err := svc.Get(ctx, "owner", id)
	require.NoError(t, err)
	assert.Equal(t, "CV", still.Title)
}

func TestResumeService_EmptyUpdateRefreshesLastModified(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewResumeStore()
	svc := NewResumeService(repo, nil).(*resumeService)

	svc.now = func() time.Time { return fixedNow }
	id, err := svc.Create(ctx, "owner", "CV", "tpl-1")
	require.NoError(t, err)

	later := fixedNow.Add(time.Minute)
	svc.now = func() time.Time { return later }
	require.NoError(t, svc.Update(ctx, "owner", id, model.ResumeUpdate{}))

	got, err := svc.Get(ctx, "owner", id)
	require.NoError(t, err)
	assert.Equal(t, later, got.LastModified)
	assert.Equal(t, fixedNow, got.CreatedAt)
}

func TestExportKey(t *testing.T) {
	assert.Equal(t, "exports/abc.pdf", storage.ExportKey("abc"))
}
