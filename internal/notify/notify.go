package notify

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/manisharan-deep/study-planner/internal/engine"
)

// Severity classifies a user-facing notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier is the notification sink. Implementations are fire-and-forget and
// never affect engine state.
type Notifier interface {
	Notify(message string, severity Severity)
}

// ConsoleNotifier writes notifications to a writer with a severity marker.
type ConsoleNotifier struct {
	w  io.Writer
	mu sync.Mutex
}

// NewConsoleNotifier creates a notifier writing to w.
func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{w: w}
}

// Notify writes the message prefixed with its severity marker.
func (n *ConsoleNotifier) Notify(message string, severity Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.w, "[%s] %s\n", severity, message)
}

// LogNotifier forwards notifications to a structured logger.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a notifier backed by the given logger.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the message at a level matching its severity.
func (n *LogNotifier) Notify(message string, severity Severity) {
	switch severity {
	case SeverityWarning:
		n.logger.Warn("notification", zap.String("message", message), zap.String("severity", string(severity)))
	case SeverityError:
		n.logger.Error("notification", zap.String("message", message), zap.String("severity", string(severity)))
	default:
		n.logger.Info("notification", zap.String("message", message), zap.String("severity", string(severity)))
	}
}

// Dispatch forwards engine events to the sink as user-facing messages. This
// is the side-effecting half of each engine operation; the pure half already
// ran and returned the events.
func Dispatch(n Notifier, events []engine.Event) {
	if n == nil {
		return
	}
	for _, e := range events {
		switch e.Kind {
		case engine.EventLevelUp:
			n.Notify(fmt.Sprintf("Level up! You're now level %d!", e.Value), SeveritySuccess)
		case engine.EventBestStreak:
			n.Notify(fmt.Sprintf("New best streak: %d days!", e.Value), SeveritySuccess)
		case engine.EventAchievementUnlocked:
			n.Notify(fmt.Sprintf("Achievement unlocked: %s", achievementTitle(e.Name)), SeveritySuccess)
		case engine.EventHabitMilestone:
			n.Notify(fmt.Sprintf("%d-day streak for %q! Keep it up!", e.Value, e.Name), SeveritySuccess)
		}
	}
}

func achievementTitle(id string) string {
	switch id {
	case engine.AchievementFirstTask:
		return "First Task Completed"
	case engine.AchievementWeekStreak:
		return "7-Day Streak"
	case engine.AchievementStudyMarathon:
		return "10 Hours of Study"
	default:
		return id
	}
}
