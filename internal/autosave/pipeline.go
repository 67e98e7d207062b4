// Package autosave debounces and sequences the writes of one edit session.
//
// A Pipeline holds at most one pending payload and one armed timer. Every
// NotifyChange resets the timer; when it fires the pending payload is written.
// At most one write is in flight, and writes are applied in the order they
// were issued.
package autosave

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"resumeapi/internal/model"
)

// DefaultDelay is the quiet period after the last change before a write.
const DefaultDelay = 1000 * time.Millisecond

var (
	ErrSaveInProgress = errors.New("a save is already in progress")
	ErrClosed         = errors.New("save pipeline is closed")
)

// Saver persists one partial update.
type Saver interface {
	Save(ctx context.Context, u model.ResumeUpdate) error
}

// SaverFunc adapts a function to Saver.
type SaverFunc func(ctx context.Context, u model.ResumeUpdate) error

func (f SaverFunc) Save(ctx context.Context, u model.ResumeUpdate) error { return f(ctx, u) }

// State is where a Pipeline is in its Idle/Pending/Saving cycle.
type State int

const (
	StateIdle State = iota
	StatePending
	StateSaving
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateSaving:
		return "saving"
	default:
		return "unknown"
	}
}

// Coalesce decides what happens to a pending payload when another change arrives.
type Coalesce int

const (
	// CoalesceMerge overlays the new change on the pending one by top-level key.
	CoalesceMerge Coalesce = iota
	// CoalesceReplace drops the pending payload in favor of the new change.
	CoalesceReplace
)

// Trigger names what started a write.
type Trigger string

const (
	TriggerDebounce Trigger = "debounce"
	TriggerForce    Trigger = "force"
	TriggerClose    Trigger = "close"
)

// NoticeKind distinguishes a confirmed write from a failed one.
type NoticeKind string

const (
	NoticeSaved  NoticeKind = "saved"
	NoticeFailed NoticeKind = "failed"
)

// Notice is a transient, user-facing report about a write.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Trigger Trigger    `json:"trigger"`
	Keys    []string   `json:"keys"`
	Message string     `json:"message"`
	At      time.Time  `json:"at"`
}

// Observer is told about every completed write.
type Observer interface {
	ObserveSave(trigger Trigger, d time.Duration, err error)
}

// Options configure a Pipeline. The zero value is usable.
type Options struct {
	// Delay is the debounce period. Zero means DefaultDelay.
	Delay    time.Duration
	Coalesce Coalesce
	// RequeueOnFailure re-arms a failed payload underneath any newer pending change.
	RequeueOnFailure bool
	// Retryable limits requeueing to errors it accepts. Nil treats every error as retryable.
	// A rejected payload is dropped after its failed notice.
	Retryable func(error) bool
	Clock     clockwork.Clock
	// Notify receives notices. It must not call back into the pipeline.
	Notify   func(Notice)
	Observer Observer
	Logger   *slog.Logger
	// BaseContext is used for timer-driven writes.
	BaseContext context.Context
}

// Pipeline is safe for concurrent use.
type Pipeline struct {
	saver Saver
	opts  Options

	mu         sync.Mutex
	state      State
	pending    model.ResumeUpdate
	hasPending bool
	timer      clockwork.Timer
	armed      bool
	gen        uint64
	deferred   bool
	done       chan struct{}
	closed     bool
}

// New returns an idle pipeline writing through saver.
func New(saver Saver, opts Options) *Pipeline {
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.BaseContext == nil {
		opts.BaseContext = context.Background()
	}
	return &Pipeline{saver: saver, opts: opts}
}

// State reports the current state.
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Pending returns the payload waiting for the timer, if any.
func (p *Pipeline) Pending() (model.ResumeUpdate, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending, p.hasPending
}

// NotifyChange records u as the pending payload and restarts the debounce timer.
func (p *Pipeline) NotifyChange(u model.ResumeUpdate) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}
	if p.hasPending {
		p.pending = p.coalesce(p.pending, u)
	} else {
		p.pending = u
		p.hasPending = true
	}
	p.armLocked()
	if p.state != StateSaving {
		p.state = StatePending
	}
	return nil
}

// ForceSave cancels the timer and writes now, carrying the pending payload or,
// if nothing is pending, an empty update. It is rejected while a write is in flight.
func (p *Pipeline) ForceSave(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	if p.state == StateSaving {
		p.mu.Unlock()
		return ErrSaveInProgress
	}
	p.stopTimerLocked()
	payload := p.takeLocked()
	p.mu.Unlock()

	return p.run(ctx, payload, TriggerForce)
}

// Close stops the timer, waits for an in-flight write and flushes whatever is pending.
// No notices are delivered once Close has been called.
func (p *Pipeline) Close(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.stopTimerLocked()

	for p.state == StateSaving {
		done := p.done
		p.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
		p.mu.Lock()
	}

	if !p.hasPending {
		p.mu.Unlock()
		return nil
	}
	payload := p.takeLocked()
	p.mu.Unlock()

	return p.run(ctx, payload, TriggerClose)
}

func (p *Pipeline) coalesce(older, newer model.ResumeUpdate) model.ResumeUpdate {
	if p.opts.Coalesce == CoalesceReplace {
		return newer
	}
	return older.Merge(newer)
}

func (p *Pipeline) armLocked() {
	if p.timer != nil {
		p.timer.Stop()
	}
	p.gen++
	gen := p.gen
	p.timer = p.opts.Clock.AfterFunc(p.opts.Delay, func() { p.fire(gen) })
	p.armed = true
}

func (p *Pipeline) stopTimerLocked() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.gen++
	p.armed = false
	p.deferred = false
}

// takeLocked moves the pending payload out and enters Saving.
func (p *Pipeline) takeLocked() model.ResumeUpdate {
	payload := p.pending
	p.pending = model.ResumeUpdate{}
	p.hasPending = false
	p.state = StateSaving
	p.done = make(chan struct{})
	return payload
}

func (p *Pipeline) fire(gen uint64) {
	p.mu.Lock()
	if gen != p.gen || p.closed {
		p.mu.Unlock()
		return
	}
	p.armed = false
	if p.state == StateSaving {
		p.deferred = true
		p.mu.Unlock()
		return
	}
	if !p.hasPending {
		p.state = StateIdle
		p.mu.Unlock()
		return
	}
	payload := p.takeLocked()
	p.mu.Unlock()

	_ = p.run(p.opts.BaseContext, payload, TriggerDebounce)
}

// run writes payload and then any change whose timer already elapsed meanwhile.
// It returns the error of the first write.
func (p *Pipeline) run(ctx context.Context, payload model.ResumeUpdate, trigger Trigger) error {
	var first error
	for i := 0; ; i++ {
		start := p.opts.Clock.Now()
		err := p.saver.Save(ctx, payload)
		if p.opts.Observer != nil {
			p.opts.Observer.ObserveSave(trigger, p.opts.Clock.Since(start), err)
		}
		if err != nil {
			p.opts.Logger.Warn("autosave_write_failed",
				"trigger", string(trigger),
				"keys", payload.Keys(),
				"error", err.Error(),
			)
		}
		if i == 0 {
			first = err
		}

		p.mu.Lock()
		next, more, notice := p.finishLocked(payload, trigger, err)
		p.mu.Unlock()

		if notice != nil && p.opts.Notify != nil {
			p.opts.Notify(*notice)
		}
		if !more {
			return first
		}
		payload, trigger = next, TriggerDebounce
		ctx = p.opts.BaseContext
	}
}

func (p *Pipeline) finishLocked(payload model.ResumeUpdate, trigger Trigger, err error) (model.ResumeUpdate, bool, *Notice) {
	if err != nil && p.opts.RequeueOnFailure && p.retryable(err) {
		if p.hasPending {
			p.pending = p.coalesce(payload, p.pending)
		} else {
			p.pending = payload
			p.hasPending = true
		}
	}

	var notice *Notice
	if !p.closed {
		switch {
		case err != nil:
			notice = &Notice{Kind: NoticeFailed, Trigger: trigger, Keys: payload.Keys(), Message: "Failed to save resume", At: p.opts.Clock.Now()}
		case trigger == TriggerForce:
			notice = &Notice{Kind: NoticeSaved, Trigger: trigger, Keys: payload.Keys(), Message: "Resume saved successfully!", At: p.opts.Clock.Now()}
		}
	}

	deferred := p.deferred
	p.deferred = false

	if p.closed || !p.hasPending {
		p.leaveSavingLocked(StateIdle)
		return model.ResumeUpdate{}, false, notice
	}
	if deferred && err == nil {
		next := p.pending
		p.pending = model.ResumeUpdate{}
		p.hasPending = false
		return next, true, notice
	}
	if !p.armed {
		p.armLocked()
	}
	p.leaveSavingLocked(StatePending)
	return model.ResumeUpdate{}, false, notice
}

func (p *Pipeline) retryable(err error) bool {
	return p.opts.Retryable == nil || p.opts.Retryable(err)
}

func (p *Pipeline) leaveSavingLocked(next State) {
	p.state = next
	if p.done != nil {
		close(p.done)
		p.done = nil
	}
}
