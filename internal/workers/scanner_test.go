package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestScannerRunsImmediatelyOnStart(t *testing.T) {
	t.Parallel()

	var reminders, recurring atomic.Int64
	s := NewScanner(
		func() int { reminders.Add(1); return 0 },
		func() int { recurring.Add(1); return 0 },
		time.Hour,
		zap.NewNop(),
	)

	s.Start(context.Background())
	defer s.Stop()

	deadline := time.After(2 * time.Second)
	for reminders.Load() == 0 || recurring.Load() == 0 {
		select {
		case <-deadline:
			t.Fatalf("scans not run: reminders=%d recurring=%d", reminders.Load(), recurring.Load())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestScannerStopHaltsLoop(t *testing.T) {
	t.Parallel()

	var runs atomic.Int64
	s := NewScanner(
		func() int { runs.Add(1); return 0 },
		func() int { return 0 },
		10*time.Millisecond,
		zap.NewNop(),
	)

	s.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	after := runs.Load()
	time.Sleep(50 * time.Millisecond)
	if got := runs.Load(); got != after {
		t.Errorf("scans continued after Stop: %d then %d", after, got)
	}
}

func TestScannerRestartReplacesLoop(t *testing.T) {
	t.Parallel()

	var runs atomic.Int64
	s := NewScanner(
		func() int { runs.Add(1); return 0 },
		func() int { return 0 },
		time.Hour,
		zap.NewNop(),
	)

	s.Start(context.Background())
	s.Start(context.Background())
	defer s.Stop()

	deadline := time.After(2 * time.Second)
	for runs.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("restart did not run a fresh pass: runs=%d", runs.Load())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestScannerContextCancellation(t *testing.T) {
	t.Parallel()

	var runs atomic.Int64
	s := NewScanner(
		func() int { runs.Add(1); return 0 },
		func() int { return 0 },
		10*time.Millisecond,
		zap.NewNop(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	time.Sleep(30 * time.Millisecond)
	cancel()
	time.Sleep(30 * time.Millisecond)

	after := runs.Load()
	time.Sleep(50 * time.Millisecond)
	if got := runs.Load(); got != after {
		t.Errorf("scans continued after context cancel: %d then %d", after, got)
	}
}
