// Package editor hosts edit sessions: a local draft of one resume bound to a save pipeline and a voice input.
package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"resumeapi/internal/autosave"
	"resumeapi/internal/model"
	"resumeapi/internal/service"
	"resumeapi/internal/voice"
)

var (
	ErrSessionNotFound   = errors.New("edit session not found")
	ErrInvalidChange     = errors.New("invalid change")
	ErrUnknownSection    = errors.New("unknown section")
	ErrUnknownVoiceField = errors.New("unknown voice target field")
)

// VoiceField names a personal_info text field that dictation can write into.
type VoiceField string

const (
	FieldFullName VoiceField = "full_name"
	FieldEmail    VoiceField = "email"
	FieldPhone    VoiceField = "phone"
	FieldLocation VoiceField = "location"
	FieldWebsite  VoiceField = "website"
	FieldLinkedIn VoiceField = "linkedin"
	FieldGitHub   VoiceField = "github"
	FieldSummary  VoiceField = "summary"
)

func (f VoiceField) target(pi *model.PersonalInfo) *string {
	switch f {
	case FieldFullName:
		return &pi.FullName
	case FieldEmail:
		return &pi.Email
	case FieldPhone:
		return &pi.Phone
	case FieldLocation:
		return &pi.Location
	case FieldWebsite:
		return &pi.Website
	case FieldLinkedIn:
		return &pi.LinkedIn
	case FieldGitHub:
		return &pi.GitHub
	case FieldSummary:
		return &pi.Summary
	default:
		return nil
	}
}

// DefaultNoticeLimit bounds how many recent notices a session keeps.
const DefaultNoticeLimit = 20

// VoiceView is the voice part of a session snapshot.
type VoiceView struct {
	State      string                  `json:"state"`
	Target     VoiceField              `json:"target"`
	Recognizer *voice.RecognizerConfig `json:"recognizer,omitempty"`
}

// View is a point-in-time snapshot of a session.
type View struct {
	ID            string            `json:"id"`
	ResumeID      string            `json:"resume_id"`
	Draft         model.Resume      `json:"draft"`
	ActiveSection model.Section     `json:"active_section"`
	SaveState     string            `json:"save_state"`
	PendingKeys   []string          `json:"pending_keys"`
	Voice         VoiceView         `json:"voice"`
	Notices       []autosave.Notice `json:"notices"`
	LastTouched   time.Time         `json:"last_touched"`
}

// Session is one user's editing context for one resume. It is safe for concurrent use.
// The draft is the source of truth for the client; it is never rolled back when a write fails.
type Session struct {
	id       string
	userID   string
	resumeID string
	clock    clockwork.Clock
	pipeline *autosave.Pipeline
	voice    *voice.Input
	recog    *voice.RecognizerConfig

	mu          sync.Mutex
	draft       model.Resume
	active      model.Section
	voiceField  VoiceField
	lastTouched time.Time

	noticeMu    sync.Mutex
	notices     []autosave.Notice
	noticeLimit int
}

func (s *Session) ID() string       { return s.id }
func (s *Session) UserID() string   { return s.userID }
func (s *Session) ResumeID() string { return s.resumeID }

// ApplyChange applies an update touching exactly one top-level key to the draft
// and hands it to the save pipeline.
func (s *Session) ApplyChange(u model.ResumeUpdate) error {
	if keys := u.Keys(); len(keys) != 1 {
		return fmt.Errorf("%w: want exactly one key, got %d", ErrInvalidChange, len(keys))
	}
	if err := service.ValidateUpdate(u); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidChange, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.touchLocked()
	s.draft.Apply(u, now)
	return s.pipeline.NotifyChange(u)
}

func (s *Session) SetActiveSection(sec model.Section) error {
	if !sec.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSection, sec)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	s.active = sec
	return nil
}

// ForceSave writes the pending change now. See autosave.Pipeline.ForceSave.
func (s *Session) ForceSave(ctx context.Context) error {
	s.mu.Lock()
	s.touchLocked()
	s.mu.Unlock()
	return s.pipeline.ForceSave(ctx)
}

func (s *Session) ToggleVoice() voice.State {
	s.mu.Lock()
	s.touchLocked()
	s.mu.Unlock()
	return s.voice.Toggle()
}

func (s *Session) SetVoiceTarget(f VoiceField) error {
	if f.target(&model.PersonalInfo{}) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownVoiceField, f)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	s.voiceField = f
	return nil
}

// PushTranscript appends the final segments to the voice target field and forwards
// the resulting personal_info as a change. It reports whether the draft changed.
// Text the field rules reject (a dictated email that is not an address) leaves the
// draft untouched and fails with ErrInvalidChange.
func (s *Session) PushTranscript(segs []voice.Segment) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.touchLocked()

	pi := s.draft.PersonalInfo
	field := s.voiceField.target(&pi)
	next, changed := s.voice.Feed(*field, segs)
	if !changed {
		return false, nil
	}
	*field = next

	u := model.ResumeUpdate{PersonalInfo: &pi}
	if err := service.ValidateUpdate(u); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidChange, err)
	}
	s.draft.Apply(u, now)
	return true, s.pipeline.NotifyChange(u)
}

// EndVoice reports end of speech or a recognizer error. Either way the input goes back to idle.
func (s *Session) EndVoice(err error) voice.State {
	return s.voice.End(err)
}

func (s *Session) Snapshot() View {
	s.mu.Lock()
	draft := s.draft.Clone()
	active := s.active
	field := s.voiceField
	touched := s.lastTouched
	s.mu.Unlock()

	pending, _ := s.pipeline.Pending()

	return View{
		ID:            s.id,
		ResumeID:      s.resumeID,
		Draft:         draft,
		ActiveSection: active,
		SaveState:     s.pipeline.State().String(),
		PendingKeys:   pending.Keys(),
		Voice: VoiceView{
			State:      s.voice.State().String(),
			Target:     field,
			Recognizer: s.recog,
		},
		Notices:     s.Notices(),
		LastTouched: touched,
	}
}

// Notices returns the most recent notices, oldest first.
func (s *Session) Notices() []autosave.Notice {
	s.noticeMu.Lock()
	defer s.noticeMu.Unlock()
	out := make([]autosave.Notice, len(s.notices))
	copy(out, s.notices)
	return out
}

// Close flushes any pending change and stops the voice input.
func (s *Session) Close(ctx context.Context) error {
	s.voice.End(nil)
	return s.pipeline.Close(ctx)
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastTouched)
}

func (s *Session) touchLocked() time.Time {
	s.lastTouched = s.clock.Now()
	return s.lastTouched
}

func (s *Session) pushNotice(n autosave.Notice) {
	s.noticeMu.Lock()
	defer s.noticeMu.Unlock()
	s.notices = append(s.notices, n)
	if over := len(s.notices) - s.noticeLimit; over > 0 {
		s.notices = append(s.notices[:0:0], s.notices[over:]...)
	}
}
