package engine

// EventKind identifies a state-transition event emitted by an engine function.
type EventKind string

const (
	// EventLevelUp fires once per level gained in a single AddXP call.
	EventLevelUp EventKind = "level_up"
	// EventBestStreak fires when the current streak surpasses the best.
	EventBestStreak EventKind = "best_streak"
	// EventAchievementUnlocked fires once per newly unlocked achievement.
	EventAchievementUnlocked EventKind = "achievement_unlocked"
	// EventHabitMilestone fires when a habit streak reaches 7 or 30 days.
	EventHabitMilestone EventKind = "habit_milestone"
)

// Event describes something notification-worthy that happened during a pure
// state transition. Engines return events; a separate dispatch step forwards
// them to the notification sink, keeping the engines free of side effects.
type Event struct {
	Kind EventKind `json:"kind"`
	// Value carries the numeric payload: level reached, streak length.
	Value int `json:"value,omitempty"`
	// Name carries the string payload: achievement ID, habit name.
	Name string `json:"name,omitempty"`
}
