package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/manisharan-deep/study-planner/internal/engine"
	"github.com/manisharan-deep/study-planner/internal/models"
	"github.com/manisharan-deep/study-planner/internal/validation"
)

// Bundle is the backup document: every collection plus the export timestamp.
// Optional fields are pointers so an import can distinguish "absent, keep
// current" from "present but empty".
type Bundle struct {
	Tasks       []*models.Task       `json:"tasks"`
	Goals       *engine.Goals        `json:"goals,omitempty"`
	Settings    *models.Settings     `json:"settings,omitempty"`
	Analytics   *engine.Analytics    `json:"analytics,omitempty"`
	StudyGroups []*models.StudyGroup `json:"study_groups,omitempty"`
	Notes       []*models.Note       `json:"notes,omitempty"`
	Habits      []*models.Habit      `json:"habits,omitempty"`
	FocusStats  *models.FocusStats   `json:"focus_stats,omitempty"`
	ExportDate  time.Time            `json:"export_date"`
}

// Marshal renders the bundle as indented JSON.
func (b *Bundle) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal bundle: %w", err)
	}
	return data, nil
}

// ParseBundle decodes and validates a backup document. A malformed document
// returns a single error and no partial result, so an import can abort
// without mutating any collection.
func ParseBundle(data []byte) (*Bundle, error) {
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse import document: %w", err)
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

func (b *Bundle) validate() error {
	for i, task := range b.Tasks {
		if task == nil {
			return fmt.Errorf("task %d: empty entry", i)
		}
		if task.Title == "" {
			return fmt.Errorf("task %d: title is required", i)
		}
		if err := validation.ValidateTaskCategory(string(task.Category)); err != nil {
			return fmt.Errorf("task %d: %w", i, err)
		}
		if err := validation.ValidateTaskPriority(string(task.Priority)); err != nil {
			return fmt.Errorf("task %d: %w", i, err)
		}
		if task.Recurring {
			if err := validation.ValidateRecurrencePattern(string(task.RecurrencePattern)); err != nil {
				return fmt.Errorf("task %d: %w", i, err)
			}
		}
		if task.Completed == (task.CompletedAt == nil) {
			return fmt.Errorf("task %d: completion timestamp must be set exactly when completed", i)
		}
	}
	if b.Goals != nil {
		if err := validation.Validate.Struct(b.Goals); err != nil {
			return fmt.Errorf("goals: %w", err)
		}
	}
	for i, habit := range b.Habits {
		if habit == nil || habit.Name == "" {
			return fmt.Errorf("habit %d: name is required", i)
		}
		if habit.Streak < 0 {
			return fmt.Errorf("habit %d: streak must be non-negative", i)
		}
	}
	return nil
}
