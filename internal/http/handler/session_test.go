package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resumeapi/internal/assist"
	"resumeapi/internal/editor"
	"resumeapi/internal/logging"
	"resumeapi/internal/model"
	"resumeapi/internal/service"
	serviceMocks "resumeapi/internal/service/mocks"
)

func newSessionApp(t *testing.T) (*fiber.App, *serviceMocks.MockResumeService, *editor.Manager, string) {
	t.Helper()
	resumeID := uuid.New().String()
	resumes := new(serviceMocks.MockResumeService)
	resumes.On("Get", mock.Anything, testUser, resumeID).
		Return(&model.Resume{ID: resumeID, UserID: testUser, Title: "CV"}, nil).Maybe()

	mgr := editor.NewManager(resumes, nil, editor.Options{
		VoiceEnabled: true,
		Clock:        clockwork.NewFakeClock(),
		Logger:       logging.Discard(),
	})

	app := newApp()
	app.Post("/sessions", OpenSession(mgr))
	app.Get("/sessions/:sid", GetSession(mgr))
	app.Delete("/sessions/:sid", CloseSession(mgr))
	app.Post("/sessions/:sid/changes", ApplyChange(mgr))
	app.Post("/sessions/:sid/save", ForceSave(mgr))
	app.Put("/sessions/:sid/active-section", SetActiveSection(mgr))
	app.Post("/sessions/:sid/voice/toggle", ToggleVoice(mgr))
	app.Put("/sessions/:sid/voice/target", SetVoiceTarget(mgr))
	app.Post("/sessions/:sid/voice/results", PushVoiceResults(mgr))
	app.Post("/sessions/:sid/voice/end", EndVoice(mgr))
	return app, resumes, mgr, resumeID
}

func decodeView(t *testing.T, resp *http.Response) editor.View {
	t.Helper()
	var v editor.View
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func openTestSession(t *testing.T, app *fiber.App, resumeID string) editor.View {
	t.Helper()
	resp, err := app.Test(jsonRequest(http.MethodPost, "/sessions", openSessionRequest{ResumeID: resumeID}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeView(t, resp)
}

func TestOpenSession(t *testing.T) {
	app, resumes, _, resumeID := newSessionApp(t)

	t.Run("success", func(t *testing.T) {
		v := openTestSession(t, app, resumeID)
		assert.NotEmpty(t, v.ID)
		assert.Equal(t, "CV", v.Draft.Title)
		assert.Equal(t, "idle", v.Voice.State)
	})

	t.Run("foreign resume", func(t *testing.T) {
		other := uuid.New().String()
		resumes.On("Get", mock.Anything, testUser, other).Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/sessions", openSessionRequest{ResumeID: other}))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("resume id must be a uuid", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/sessions", openSessionRequest{ResumeID: "abc"}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_INPUT", errorCode(t, resp))
	})
}

func TestSessionLifecycle(t *testing.T) {
	app, resumes, mgr, resumeID := newSessionApp(t)
	v := openTestSession(t, app, resumeID)
	base := "/sessions/" + v.ID

	t.Run("change is applied to the draft and left pending", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, base+"/changes", `{"title":"Staff Engineer"}`))

		assert.Equal(t, http.StatusAccepted, resp.StatusCode)
		got := decodeView(t, resp)
		assert.Equal(t, "Staff Engineer", got.Draft.Title)
		assert.Equal(t, "pending", got.SaveState)
		assert.Equal(t, []string{"title"}, got.PendingKeys)
	})

	t.Run("change touching two keys", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, base+"/changes", `{"title":"x","skills":[]}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_CHANGE", errorCode(t, resp))
	})

	t.Run("force save", func(t *testing.T) {
		resumes.On("Update", mock.Anything, testUser, resumeID, mock.MatchedBy(func(u model.ResumeUpdate) bool {
			return u.Title != nil && *u.Title == "Staff Engineer"
		})).Return(nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, base+"/save", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		got := decodeView(t, resp)
		assert.Equal(t, "idle", got.SaveState)
		require.Len(t, got.Notices, 1)
		assert.Equal(t, "Resume saved successfully!", got.Notices[0].Message)
	})

	t.Run("active section", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPut, base+"/active-section", activeSectionRequest{Section: model.SectionEducation}))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, model.SectionEducation, decodeView(t, resp).ActiveSection)

		resp, _ = app.Test(jsonRequest(http.MethodPut, base+"/active-section", activeSectionRequest{Section: "hobbies"}))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("other users cannot see the session", func(t *testing.T) {
		other := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
		other.Use(asUser("user-2"))
		other.Get("/sessions/:sid", GetSession(mgr))

		resp, _ := other.Test(httptest.NewRequest(http.MethodGet, base, nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "SESSION_NOT_FOUND", errorCode(t, resp))
	})

	t.Run("close", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, base, nil))
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, _ = app.Test(httptest.NewRequest(http.MethodGet, base, nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	resumes.AssertExpectations(t)
}

func TestSessionVoice(t *testing.T) {
	app, _, _, resumeID := newSessionApp(t)
	v := openTestSession(t, app, resumeID)
	base := "/sessions/" + v.ID

	resp, _ := app.Test(jsonRequest(http.MethodPut, base+"/voice/target", voiceTargetRequest{Field: "nickname"}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = app.Test(jsonRequest(http.MethodPut, base+"/voice/target", voiceTargetRequest{Field: editor.FieldSummary}))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = app.Test(httptest.NewRequest(http.MethodPost, base+"/voice/toggle", nil))
	var state voiceStateResponse
	json.NewDecoder(resp.Body).Decode(&state)
	assert.Equal(t, "listening", state.State)

	resp, _ = app.Test(jsonRequest(http.MethodPost, base+"/voice/results",
		`{"segments":[{"text":"hello","final":true},{"text":"wor","final":false},{"text":"world","final":true}]}`))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello world", decodeView(t, resp).Draft.PersonalInfo.Summary)

	resp, _ = app.Test(jsonRequest(http.MethodPost, base+"/voice/end", `{"error":"network"}`))
	json.NewDecoder(resp.Body).Decode(&state)
	assert.Equal(t, "idle", state.State)
}

func TestAssistHandlers(t *testing.T) {
	bridge := assist.NewBridge(assist.CompleterFunc(func(_ context.Context, req assist.Request) (string, error) {
		return "Go, SQL, Kubernetes", nil
	}), nil, logging.Discard())
	disabled := assist.NewBridge(nil, nil, logging.Discard())

	app := newApp()
	app.Post("/assist/summary", GenerateSummary(disabled))
	app.Post("/assist/improve-description", ImproveDescription(disabled))
	app.Post("/assist/suggest-skills", SuggestSkills(bridge))

	t.Run("summary falls back", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/assist/summary", summaryRequest{Skills: []string{"Go"}}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body textResponse
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, assist.FallbackSummary, body.Text)
	})

	t.Run("improve falls back to the input", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/assist/improve-description", improveRequest{Description: "wrote code", JobTitle: "Dev"}))

		var body textResponse
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "wrote code", body.Text)
	})

	t.Run("improve requires a description", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/assist/improve-description", improveRequest{JobTitle: "Dev"}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("skills", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/assist/suggest-skills", suggestSkillsRequest{JobTitle: "SRE", Industry: "Cloud"}))

		var body skillsResponse
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, []string{"Go", "SQL", "Kubernetes"}, body.Skills)
	})
}
