package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskCategory represents the subject a task belongs to
type TaskCategory string

const (
	CategoryMath     TaskCategory = "math"
	CategoryScience  TaskCategory = "science"
	CategoryHistory  TaskCategory = "history"
	CategoryLanguage TaskCategory = "language"
	CategoryOther    TaskCategory = "other"
)

// TaskPriority represents how urgent a task is
type TaskPriority string

const (
	PriorityUrgent   TaskPriority = "urgent"
	PriorityHigh     TaskPriority = "high"
	PriorityMedium   TaskPriority = "medium"
	PriorityLow      TaskPriority = "low"
	PriorityOptional TaskPriority = "optional"
)

// RecurrencePattern governs both eligibility-to-recur and due-date advancement
type RecurrencePattern string

const (
	RecurDaily   RecurrencePattern = "daily"
	RecurWeekly  RecurrencePattern = "weekly"
	RecurMonthly RecurrencePattern = "monthly"
)

// Subtask is a single checklist entry belonging to a task
type Subtask struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Task represents a study task.
// Invariant: CompletedAt is non-nil iff Completed is true.
type Task struct {
	ID                uuid.UUID         `json:"id"`
	Title             string            `json:"title"`
	Description       string            `json:"description,omitempty"`
	Category          TaskCategory      `json:"category"`
	Priority          TaskPriority      `json:"priority"`
	DueDate           *time.Time        `json:"due_date,omitempty"`
	EstimatedHours    float64           `json:"estimated_hours,omitempty"`
	Recurring         bool              `json:"recurring"`
	RecurrencePattern RecurrencePattern `json:"recurrence_pattern,omitempty"`
	Subtasks          []Subtask         `json:"subtasks,omitempty"`
	Notes             string            `json:"notes,omitempty"`
	Completed         bool              `json:"completed"`
	CompletedAt       *time.Time        `json:"completed_at,omitempty"`
	ReminderSent      bool              `json:"reminder_sent,omitempty"`
	// LastSpawnedAt marks that a next instance has already been spawned for the
	// current completion, so re-running the recurrence scan cannot duplicate it.
	LastSpawnedAt *time.Time `json:"last_spawned_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// SubtaskProgress returns completed and total subtask counts.
func (t *Task) SubtaskProgress() (done, total int) {
	for _, s := range t.Subtasks {
		if s.Completed {
			done++
		}
	}
	return done, len(t.Subtasks)
}
