package engine

import "time"

// Goals holds the user-configured study targets. Targets are read-only to
// the engine; only the user changes them.
type Goals struct {
	DailyStudyMinutes  int `json:"daily_study_minutes" validate:"min=0"`
	DailyTasks         int `json:"daily_tasks" validate:"min=0"`
	WeeklyStudyMinutes int `json:"weekly_study_minutes" validate:"min=0"`
}

// DefaultGoals returns the targets used when nothing has been persisted:
// four hours and five tasks a day, twenty-eight hours a week.
func DefaultGoals() Goals {
	return Goals{
		DailyStudyMinutes:  240,
		DailyTasks:         5,
		WeeklyStudyMinutes: 1680,
	}
}

// DailyProgress compares today's ledger totals against the daily targets.
type DailyProgress struct {
	StudyMinutesDone   int `json:"study_minutes_done"`
	StudyMinutesTarget int `json:"study_minutes_target"`
	TasksDone          int `json:"tasks_done"`
	TasksTarget        int `json:"tasks_target"`
}

// WeeklyProgress compares the trailing week's minutes against the weekly
// target.
type WeeklyProgress struct {
	StudyMinutesDone   int `json:"study_minutes_done"`
	StudyMinutesTarget int `json:"study_minutes_target"`
}

// DailyGoalProgress is a pure read-only projection; days with no recorded
// activity count as zero.
func DailyGoalProgress(ledger *Ledger, goals Goals, today time.Time) DailyProgress {
	key := DateKey(today)
	return DailyProgress{
		StudyMinutesDone:   ledger.MinutesOn(key),
		StudyMinutesTarget: goals.DailyStudyMinutes,
		TasksDone:          ledger.TasksOn(key),
		TasksTarget:        goals.DailyTasks,
	}
}

// WeeklyGoalProgress sums the 7-day series ending today against the weekly
// target.
func WeeklyGoalProgress(ledger *Ledger, goals Goals, today time.Time) WeeklyProgress {
	total := 0
	for _, minutes := range ledger.WeeklySeries(today) {
		total += minutes
	}
	return WeeklyProgress{
		StudyMinutesDone:   total,
		StudyMinutesTarget: goals.WeeklyStudyMinutes,
	}
}
