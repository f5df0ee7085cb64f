package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/manisharan-deep/study-planner/internal/models"
)

// recurrence eligibility thresholds in whole days since completion
const (
	daysUntilDailyRecur   = 1
	daysUntilWeeklyRecur  = 7
	daysUntilMonthlyRecur = 30
)

// ShouldRecur reports whether a completed recurring task is eligible to spawn
// its next instance on the given day. It is defined only for tasks that are
// both recurring and completed; anything else returns false.
func ShouldRecur(task *models.Task, today time.Time) bool {
	if !task.Recurring || !task.Completed || task.CompletedAt == nil {
		return false
	}
	if task.LastSpawnedAt != nil && !task.LastSpawnedAt.Before(*task.CompletedAt) {
		// Already spawned for this completion.
		return false
	}
	diff := wholeDaysBetween(*task.CompletedAt, today)
	switch task.RecurrencePattern {
	case models.RecurDaily:
		return diff >= daysUntilDailyRecur
	case models.RecurWeekly:
		return diff >= daysUntilWeeklyRecur
	case models.RecurMonthly:
		return diff >= daysUntilMonthlyRecur
	default:
		return false
	}
}

// SpawnNext clones a completed recurring task into its next instance with a
// fresh identifier and cleared completion state, advancing any due date by
// one pattern unit using calendar arithmetic. The original task is stamped
// with LastSpawnedAt so a repeated scan cannot spawn duplicates; otherwise it
// is left untouched (recurrence produces siblings, not a mutated chain).
func SpawnNext(task *models.Task, now time.Time) *models.Task {
	next := *task
	next.ID = uuid.New()
	next.Completed = false
	next.CompletedAt = nil
	next.ReminderSent = false
	next.LastSpawnedAt = nil
	next.CreatedAt = now
	next.Subtasks = append([]models.Subtask(nil), task.Subtasks...)

	if task.DueDate != nil {
		due := advanceDueDate(*task.DueDate, task.RecurrencePattern)
		next.DueDate = &due
	}

	spawned := now
	task.LastSpawnedAt = &spawned
	return &next
}

func advanceDueDate(due time.Time, pattern models.RecurrencePattern) time.Time {
	switch pattern {
	case models.RecurDaily:
		return due.AddDate(0, 0, 1)
	case models.RecurWeekly:
		return due.AddDate(0, 0, 7)
	case models.RecurMonthly:
		// Month-end overflow follows normal calendar rollover.
		return due.AddDate(0, 1, 0)
	default:
		return due
	}
}

func wholeDaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
