// Package workers runs the background scans that keep planner state current
// while the process is alive.
package workers

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Scanner periodically runs the reminder and recurrence scans. Both scans are
// idempotent, so the interval only affects latency, never correctness.
type Scanner struct {
	reminders func() int
	recurring func() int
	interval  time.Duration
	logger    *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewScanner creates a scanner that calls the given scan functions every
// interval. A non-positive interval falls back to one minute.
func NewScanner(reminders, recurring func() int, interval time.Duration, logger *zap.Logger) *Scanner {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Scanner{
		reminders: reminders,
		recurring: recurring,
		interval:  interval,
		logger:    logger,
	}
}

// Start launches the scan loop. It runs one pass immediately, then once per
// interval until the context is cancelled or Stop is called.
func (s *Scanner) Start(ctx context.Context) {
	s.Stop()

	s.mu.Lock()
	ctx, s.cancel = context.WithCancel(ctx)
	done := make(chan struct{})
	s.done = done
	s.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.runOnce()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.runOnce()
			}
		}
	}()
}

// Stop halts the scan loop and waits for the current pass to finish.
func (s *Scanner) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

func (s *Scanner) runOnce() {
	notified := s.reminders()
	spawned := s.recurring()
	if notified > 0 || spawned > 0 {
		s.logger.Info("background_scan_completed",
			zap.Int("reminders_sent", notified),
			zap.Int("tasks_spawned", spawned),
		)
	}
}
