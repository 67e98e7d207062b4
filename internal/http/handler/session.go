package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/editor"
	"resumeapi/internal/http/middleware"
	"resumeapi/internal/model"
	"resumeapi/internal/voice"
)

type openSessionRequest struct {
	ResumeID string `json:"resume_id" validate:"required,uuid"`
}

type activeSectionRequest struct {
	Section model.Section `json:"section" validate:"required"`
}

type voiceTargetRequest struct {
	Field editor.VoiceField `json:"field" validate:"required"`
}

type voiceResultsRequest struct {
	Segments []voice.Segment `json:"segments" validate:"max=100"`
}

type voiceEndRequest struct {
	Error string `json:"error,omitempty"`
}

type voiceStateResponse struct {
	State string `json:"state"`
}

// session looks up the caller's :sid session, writing a 404 when it is not theirs.
func session(c *fiber.Ctx, m *editor.Manager) (*editor.Session, bool, error) {
	s, err := m.Get(middleware.UserID(c), c.Params("sid"))
	if err != nil {
		return nil, false, writeServiceError(c, err)
	}
	return s, true, nil
}

// OpenSession starts an edit session on one of the caller's resumes.
//
// @Summary Open edit session
// @Tags sessions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body openSessionRequest true "resume to edit"
// @Success 201 {object} editor.View
// @Router /sessions [post]
func OpenSession(m *editor.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req openSessionRequest
		if ok, err := bindJSON(c, &req); !ok {
			return err
		}
		s, err := m.Open(c.UserContext(), middleware.UserID(c), req.ResumeID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(s.Snapshot())
	}
}

// @Summary Get edit session
// @Tags sessions
// @Security BearerAuth
// @Produce json
// @Param sid path string true "session id"
// @Success 200 {object} editor.View
// @Router /sessions/{sid} [get]
func GetSession(m *editor.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, ok, err := session(c, m)
		if !ok {
			return err
		}
		return c.JSON(s.Snapshot())
	}
}

// CloseSession flushes pending changes and ends the session.
//
// @Summary Close edit session
// @Tags sessions
// @Security BearerAuth
// @Param sid path string true "session id"
// @Success 204
// @Router /sessions/{sid} [delete]
func CloseSession(m *editor.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := m.Close(c.UserContext(), middleware.UserID(c), c.Params("sid")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ApplyChange edits one top-level key of the draft and schedules a debounced save.
//
// @Summary Apply a change
// @Tags sessions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param sid path string true "session id"
// @Param body body model.ResumeUpdate true "exactly one key"
// @Success 202 {object} editor.View
// @Router /sessions/{sid}/changes [post]
func ApplyChange(m *editor.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, ok, err := session(c, m)
		if !ok {
			return err
		}
		var u model.ResumeUpdate
		if err := c.BodyParser(&u); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		}
		if err := validate.Struct(u); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", validationMessage(err))
		}
		if err := s.ApplyChange(u); err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusAccepted).JSON(s.Snapshot())
	}
}

// ForceSave writes the pending change immediately.
//
// @Summary Save now
// @Tags sessions
// @Security BearerAuth
// @Produce json
// @Param sid path string true "session id"
// @Success 200 {object} editor.View
// @Failure 409 {object} errorPayload
// @Router /sessions/{sid}/save [post]
func ForceSave(m *editor.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, ok, err := session(c, m)
		if !ok {
			return err
		}
		if err := s.ForceSave(c.UserContext()); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(s.Snapshot())
	}
}

// @Summary Set active section
// @Tags sessions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param sid path string true "session id"
// @Param body body activeSectionRequest true "section"
// @Success 200 {object} editor.View
// @Router /sessions/{sid}/active-section [put]
func SetActiveSection(m *editor.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, ok, err := session(c, m)
		if !ok {
			return err
		}
		var req activeSectionRequest
		if ok, err := bindJSON(c, &req); !ok {
			return err
		}
		if err := s.SetActiveSection(req.Section); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(s.Snapshot())
	}
}

// @Summary Toggle voice input
// @Tags sessions
// @Security BearerAuth
// @Produce json
// @Param sid path string true "session id"
// @Success 200 {object} voiceStateResponse
// @Router /sessions/{sid}/voice/toggle [post]
func ToggleVoice(m *editor.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, ok, err := session(c, m)
		if !ok {
			return err
		}
		return c.JSON(voiceStateResponse{State: s.ToggleVoice().String()})
	}
}

// @Summary Set voice target field
// @Tags sessions
// @Security BearerAuth
// @Accept json
// @Param sid path string true "session id"
// @Param body body voiceTargetRequest true "personal_info field"
// @Success 204
// @Router /sessions/{sid}/voice/target [put]
func SetVoiceTarget(m *editor.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, ok, err := session(c, m)
		if !ok {
			return err
		}
		var req voiceTargetRequest
		if ok, err := bindJSON(c, &req); !ok {
			return err
		}
		if err := s.SetVoiceTarget(req.Field); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// PushVoiceResults relays recognizer results from the browser. Only final segments change the draft.
//
// @Summary Push voice results
// @Tags sessions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param sid path string true "session id"
// @Param body body voiceResultsRequest true "recognition segments"
// @Success 200 {object} editor.View
// @Router /sessions/{sid}/voice/results [post]
func PushVoiceResults(m *editor.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, ok, err := session(c, m)
		if !ok {
			return err
		}
		var req voiceResultsRequest
		if ok, err := bindJSON(c, &req); !ok {
			return err
		}
		if _, err := s.PushTranscript(req.Segments); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(s.Snapshot())
	}
}

// EndVoice reports that the browser recognizer stopped, normally or with an error.
//
// @Summary End voice input
// @Tags sessions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param sid path string true "session id"
// @Param body body voiceEndRequest false "recognizer error, if any"
// @Success 200 {object} voiceStateResponse
// @Router /sessions/{sid}/voice/end [post]
func EndVoice(m *editor.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, ok, err := session(c, m)
		if !ok {
			return err
		}
		var req voiceEndRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
			}
		}
		var cause error
		if req.Error != "" {
			cause = errors.New(req.Error)
		}
		return c.JSON(voiceStateResponse{State: s.EndVoice(cause).String()})
	}
}
