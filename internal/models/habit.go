package models

import (
	"time"

	"github.com/google/uuid"
)

// HabitFrequency represents how often a habit should be performed
type HabitFrequency string

const (
	FrequencyDaily   HabitFrequency = "daily"
	FrequencyWeekly  HabitFrequency = "weekly"
	FrequencyWeekday HabitFrequency = "weekdays"
)

// Habit represents a recurring personal habit tracked by day.
//
// Streak is an incremental up/down counter: marking a day adds 1, unmarking
// subtracts 1 (clamped at 0). It is not recomputed from CompletedDates, so it
// can diverge from the true consecutive-day count when a non-adjacent day is
// toggled. That is the intended semantic, not a bug.
type Habit struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Frequency   HabitFrequency `json:"frequency"`
	BestTime    string         `json:"best_time,omitempty"`
	Icon        string         `json:"icon,omitempty"`
	Streak      int            `json:"streak"`
	// CompletedDates holds date keys (local calendar days) the habit was done.
	CompletedDates []string  `json:"completed_dates"`
	CreatedAt      time.Time `json:"created_at"`
}

// CompletedOn reports whether the habit was marked done on the given date key.
func (h *Habit) CompletedOn(key string) bool {
	for _, d := range h.CompletedDates {
		if d == key {
			return true
		}
	}
	return false
}
