package editor

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"resumeapi/internal/autosave"
	"resumeapi/internal/model"
	"resumeapi/internal/service"
	"resumeapi/internal/voice"
)

// DefaultIdleTTL is how long an untouched session stays open.
const DefaultIdleTTL = 30 * time.Minute

// Options configure a Manager and the pipelines of the sessions it opens.
type Options struct {
	Delay            time.Duration
	Coalesce         autosave.Coalesce
	RequeueOnFailure bool
	Observer         autosave.Observer

	IdleTTL      time.Duration
	VoiceEnabled bool
	NoticeLimit  int

	Clock  clockwork.Clock
	Logger *slog.Logger
}

// Manager owns every open session. Sessions are keyed by id and scoped to their user.
type Manager struct {
	resumes  service.ResumeService
	profiles service.ProfileService
	opts     Options

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager builds a Manager. profiles may be nil, in which case voice support
// follows VoiceEnabled alone and the recognizer listens in its default language.
func NewManager(resumes service.ResumeService, profiles service.ProfileService, opts Options) *Manager {
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = DefaultIdleTTL
	}
	if opts.NoticeLimit <= 0 {
		opts.NoticeLimit = DefaultNoticeLimit
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Manager{
		resumes:  resumes,
		profiles: profiles,
		opts:     opts,
		sessions: make(map[string]*Session),
	}
}

// Open loads the resume (which checks ownership) and starts a session on it.
func (m *Manager) Open(ctx context.Context, userID, resumeID string) (*Session, error) {
	r, err := m.resumes.Get(ctx, userID, resumeID)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:          uuid.New().String(),
		userID:      userID,
		resumeID:    resumeID,
		clock:       m.opts.Clock,
		draft:       r.Clone(),
		active:      model.SectionPersonalInfo,
		voiceField:  FieldSummary,
		noticeLimit: m.opts.NoticeLimit,
	}
	s.lastTouched = m.opts.Clock.Now()

	var engine voice.Engine
	if enabled, lang := m.voicePreference(ctx, userID); enabled {
		cfg := voice.DefaultRecognizerConfig()
		if lang != "" {
			cfg.Lang = lang
		}
		relay := voice.NewRelayEngine(cfg)
		rc := relay.Config()
		s.recog = &rc
		engine = relay
	}
	s.voice = voice.NewInput(engine)

	log := m.opts.Logger.With("session_id", s.id, "resume_id", resumeID)
	saver := autosave.SaverFunc(func(ctx context.Context, u model.ResumeUpdate) error {
		return m.resumes.Update(ctx, userID, resumeID, u)
	})
	s.pipeline = autosave.New(saver, autosave.Options{
		Delay:            m.opts.Delay,
		Coalesce:         m.opts.Coalesce,
		RequeueOnFailure: m.opts.RequeueOnFailure,
		Retryable:        RetryableSaveError,
		Clock:            m.opts.Clock,
		Notify:           s.pushNotice,
		Observer:         m.opts.Observer,
		Logger:           log,
	})

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	log.Info("edit_session_opened", "user_id", userID, "voice_supported", engine != nil)
	return s, nil
}

// Get returns the caller's session. Sessions of other users are reported as missing.
func (m *Manager) Get(userID, sessionID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok || s.userID != userID {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Close flushes and forgets one of the caller's sessions.
func (m *Manager) Close(ctx context.Context, userID, sessionID string) error {
	m.mu.Lock()
	s, ok := m.sessions[sessionID]
	if !ok || s.userID != userID {
		m.mu.Unlock()
		return ErrSessionNotFound
	}
	delete(m.sessions, sessionID)
	m.mu.Unlock()

	return s.Close(ctx)
}

// Len reports how many sessions are open.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep closes sessions idle for at least the TTL and returns how many it closed.
func (m *Manager) Sweep(ctx context.Context) int {
	now := m.opts.Clock.Now()

	m.mu.Lock()
	var idle []*Session
	for id, s := range m.sessions {
		if s.idleSince(now) >= m.opts.IdleTTL {
			idle = append(idle, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range idle {
		if err := s.Close(ctx); err != nil {
			m.opts.Logger.Warn("edit_session_flush_failed", "session_id", s.id, "error", err.Error())
			continue
		}
		m.opts.Logger.Info("edit_session_expired", "session_id", s.id, "resume_id", s.resumeID)
	}
	return len(idle)
}

// Run sweeps idle sessions until ctx is done.
func (m *Manager) Run(ctx context.Context) {
	interval := m.opts.IdleTTL / 2
	if interval > time.Minute {
		interval = time.Minute
	}
	ticker := m.opts.Clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			m.Sweep(ctx)
		}
	}
}

// CloseAll flushes every open session concurrently and returns the first error.
func (m *Manager) CloseAll(ctx context.Context) error {
	m.mu.Lock()
	all := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		all = append(all, s)
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	var g errgroup.Group
	for _, s := range all {
		g.Go(func() error {
			return s.Close(ctx)
		})
	}
	return g.Wait()
}

// voicePreference reports whether the user gets dictation and in which language.
// The server-wide switch wins; a profile that cannot be read leaves it in charge.
func (m *Manager) voicePreference(ctx context.Context, userID string) (bool, string) {
	if !m.opts.VoiceEnabled {
		return false, ""
	}
	if m.profiles == nil {
		return true, ""
	}
	p, err := m.profiles.Get(ctx, userID)
	if err != nil {
		m.opts.Logger.Debug("profile_lookup_failed", "user_id", userID, "error", err.Error())
		return true, ""
	}
	return p.Preferences.VoiceEnabled, p.Preferences.Language
}

// RetryableSaveError reports whether a failed write is worth requeueing.
// Rejections the store will repeat for the same payload are final.
func RetryableSaveError(err error) bool {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrUnauthenticated):
		return false
	}
	return true
}
