package models

// Settings holds user-facing preferences. The application reads and writes
// this struct; presentation layers never own these values.
type Settings struct {
	DarkMode        bool   `json:"dark_mode"`
	ThemeColor      string `json:"theme_color"`
	TaskReminders   bool   `json:"task_reminders"`
	BreakReminders  bool   `json:"break_reminders"`
	StreakReminders bool   `json:"streak_reminders"`
}

// DefaultSettings returns the settings used when nothing has been persisted.
func DefaultSettings() Settings {
	return Settings{
		DarkMode:        false,
		ThemeColor:      "blue",
		TaskReminders:   true,
		BreakReminders:  true,
		StreakReminders: true,
	}
}

// FocusStats tracks aggregate focus-session figures shown on the focus view.
type FocusStats struct {
	SessionsToday         int `json:"sessions_today"`
	TotalSessions         int `json:"total_sessions"`
	TotalFocusMinutes     int `json:"total_focus_minutes"`
	AverageSessionMinutes int `json:"average_session_minutes"`
	FocusStreak           int `json:"focus_streak"`
}
