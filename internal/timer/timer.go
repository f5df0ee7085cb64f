// Package timer implements the pomodoro phase machine. The machine itself
// is synchronous state; the Runner owns the single permitted ticker.
package timer

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Phase identifies the current pomodoro phase.
type Phase string

const (
	PhaseFocus      Phase = "focus"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// Config holds the timer durations. These come from application
// configuration, never from a presentation layer.
type Config struct {
	FocusMinutes            int
	ShortBreakMinutes       int
	LongBreakMinutes        int
	SessionsBeforeLongBreak int
}

// PhaseChange describes a completed phase transition.
type PhaseChange struct {
	Completed Phase
	Next      Phase
	// FocusMinutes is the focus duration just finished; zero for breaks.
	FocusMinutes int
	// SessionsCompleted counts focus phases completed in this run.
	SessionsCompleted int
}

// Session is the pomodoro countdown state machine. All methods are
// synchronous; one second of wall time corresponds to one Tick call.
type Session struct {
	cfg       Config
	phase     Phase
	remaining int // seconds
	sessions  int // completed focus phases this run
}

// NewSession creates a session ready to start a focus phase.
func NewSession(cfg Config) *Session {
	return &Session{
		cfg:       cfg,
		phase:     PhaseFocus,
		remaining: cfg.FocusMinutes * 60,
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Remaining returns the seconds left in the current phase.
func (s *Session) Remaining() int { return s.remaining }

// Sessions returns the number of focus phases completed this run.
func (s *Session) Sessions() int { return s.sessions }

// Reset returns the session to a fresh focus phase.
func (s *Session) Reset() {
	s.phase = PhaseFocus
	s.remaining = s.cfg.FocusMinutes * 60
}

// Tick advances the countdown by one second. When the countdown reaches
// zero it transitions to the next phase and reports the change; otherwise it
// returns nil.
func (s *Session) Tick() *PhaseChange {
	s.remaining--
	if s.remaining > 0 {
		return nil
	}
	return s.completePhase()
}

func (s *Session) completePhase() *PhaseChange {
	change := &PhaseChange{Completed: s.phase}

	if s.phase == PhaseFocus {
		s.sessions++
		change.FocusMinutes = s.cfg.FocusMinutes
		if s.sessions%s.cfg.SessionsBeforeLongBreak == 0 {
			s.phase = PhaseLongBreak
			s.remaining = s.cfg.LongBreakMinutes * 60
		} else {
			s.phase = PhaseShortBreak
			s.remaining = s.cfg.ShortBreakMinutes * 60
		}
	} else {
		s.phase = PhaseFocus
		s.remaining = s.cfg.FocusMinutes * 60
	}

	change.Next = s.phase
	change.SessionsCompleted = s.sessions
	return change
}

// Runner drives a session with a real once-per-second ticker. At most one
// ticker is active at a time: starting a new run first stops any previous
// one.
type Runner struct {
	mu      sync.Mutex
	logger  *zap.Logger
	cancel  context.CancelFunc
	done    chan struct{}
	onTick  func(*Session)
	onPhase func(PhaseChange)
}

// NewRunner creates a runner. onTick is called after every tick with the
// session; onPhase is called on each completed phase transition.
func NewRunner(logger *zap.Logger, onTick func(*Session), onPhase func(PhaseChange)) *Runner {
	return &Runner{logger: logger, onTick: onTick, onPhase: onPhase}
}

// Start begins ticking the session once per second until the context is
// cancelled or Stop is called. Any previously running ticker is stopped
// first.
func (r *Runner) Start(ctx context.Context, session *Session) {
	r.Stop()

	r.mu.Lock()
	ctx, r.cancel = context.WithCancel(ctx)
	done := make(chan struct{})
	r.done = done
	r.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				change := session.Tick()
				if r.onTick != nil {
					r.onTick(session)
				}
				if change != nil {
					r.logger.Info("timer_phase_completed",
						zap.String("completed", string(change.Completed)),
						zap.String("next", string(change.Next)),
						zap.Int("sessions", change.SessionsCompleted),
					)
					if r.onPhase != nil {
						r.onPhase(*change)
					}
				}
			}
		}
	}()
}

// Stop cancels the active ticker, if any, and waits for it to exit.
func (r *Runner) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}
