package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/manisharan-deep/study-planner/internal/config"
	"github.com/manisharan-deep/study-planner/internal/planner"
	"github.com/manisharan-deep/study-planner/internal/timer"
	"github.com/manisharan-deep/study-planner/internal/workers"
)

// NewTimerCmd creates the pomodoro timer command
func NewTimerCmd() *cobra.Command {
	var sessions int

	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Run the pomodoro timer",
		Long:  "Run focus and break phases, recording completed focus sessions. Stop with Ctrl+C.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()

				// Reminder and recurrence scans run alongside the timer so a
				// long focus run still surfaces due tasks.
				scanner := workers.NewScanner(p.ScanReminders, p.ScanRecurring, time.Minute, log)
				scanner.Start(ctx)
				defer scanner.Stop()

				session := timer.NewSession(timer.Config{
					FocusMinutes:            cfg.FocusMinutes,
					ShortBreakMinutes:       cfg.ShortBreakMinutes,
					LongBreakMinutes:        cfg.LongBreakMinutes,
					SessionsBeforeLongBreak: cfg.SessionsBeforeLongBreak,
				})

				done := make(chan struct{})
				onTick := func(s *timer.Session) {
					fmt.Printf("\r%s %02d:%02d ", s.Phase(), s.Remaining()/60, s.Remaining()%60)
				}
				onPhase := func(change timer.PhaseChange) {
					fmt.Println()
					if change.Completed == timer.PhaseFocus {
						p.FinishFocusSession(change.FocusMinutes)
						fmt.Printf("Focus session %d done. Next: %s\n", change.SessionsCompleted, change.Next)
						if sessions > 0 && change.SessionsCompleted >= sessions {
							close(done)
						}
					} else {
						fmt.Printf("Break over. Back to focus.\n")
					}
				}

				runner := timer.NewRunner(log, onTick, onPhase)
				runner.Start(ctx, session)
				defer runner.Stop()

				fmt.Printf("Starting %d-minute focus session. Ctrl+C to stop.\n", cfg.FocusMinutes)
				select {
				case <-ctx.Done():
					fmt.Println("\nTimer stopped")
				case <-done:
					fmt.Println("All sessions complete")
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&sessions, "sessions", "n", 0, "Stop after this many focus sessions (0 = run until interrupted)")
	return cmd
}
