package engine

import (
	"testing"

	"github.com/manisharan-deep/study-planner/internal/models"
)

func TestAddXP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		start      Gamification
		amount     int
		wantLevel  int
		wantXP     int
		wantEvents int
	}{
		{"no level up", Gamification{Level: 1, XP: 50}, 20, 1, 70, 0},
		{"single level up with rollover", Gamification{Level: 1, XP: 90}, 20, 2, 10, 1},
		{"exact threshold levels up to zero xp", Gamification{Level: 1, XP: 0}, 100, 2, 0, 1},
		{"large grant crosses two thresholds", Gamification{Level: 1, XP: 0}, 320, 3, 20, 2},
		{"negative amount ignored", Gamification{Level: 2, XP: 40}, -10, 2, 40, 0},
		{"zero level repaired before grant", Gamification{}, 10, 1, 10, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, events := AddXP(tt.start, tt.amount)
			if got.Level != tt.wantLevel {
				t.Errorf("Level = %d, want %d", got.Level, tt.wantLevel)
			}
			if got.XP != tt.wantXP {
				t.Errorf("XP = %d, want %d", got.XP, tt.wantXP)
			}
			if len(events) != tt.wantEvents {
				t.Errorf("events = %d, want %d", len(events), tt.wantEvents)
			}
			for _, e := range events {
				if e.Kind != EventLevelUp {
					t.Errorf("event kind = %s, want %s", e.Kind, EventLevelUp)
				}
			}
			if got.XP >= got.Level*xpPerLevel {
				t.Errorf("XP %d not below threshold %d", got.XP, got.Level*xpPerLevel)
			}
		})
	}
}

func TestCheckAchievements(t *testing.T) {
	t.Parallel()

	completedTask := &models.Task{Title: "done", Completed: true}
	richLedger := NewLedger()
	richLedger.AddStudyMinutes("2024-01-01", 600)

	tests := []struct {
		name     string
		tasks    []*models.Task
		streaks  Streaks
		ledger   *Ledger
		unlocked []string
		want     []string
	}{
		{
			name:   "nothing unlocked on fresh state",
			ledger: NewLedger(),
		},
		{
			name:   "first completed task",
			tasks:  []*models.Task{completedTask},
			ledger: NewLedger(),
			want:   []string{AchievementFirstTask},
		},
		{
			name:    "week streak",
			streaks: Streaks{Best: 7},
			ledger:  NewLedger(),
			want:    []string{AchievementWeekStreak},
		},
		{
			name:   "study marathon at ten hours",
			ledger: richLedger,
			want:   []string{AchievementStudyMarathon},
		},
		{
			name:     "already unlocked achievements do not re-fire",
			tasks:    []*models.Task{completedTask},
			ledger:   NewLedger(),
			unlocked: []string{AchievementFirstTask},
			want:     []string{AchievementFirstTask},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, events := CheckAchievements(tt.tasks, tt.streaks, tt.ledger, tt.unlocked)
			if len(got) != len(tt.want) {
				t.Fatalf("unlocked = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("unlocked[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
			wantNew := len(tt.want) - len(tt.unlocked)
			if len(events) != wantNew {
				t.Errorf("events = %d, want %d", len(events), wantNew)
			}
		})
	}
}

func TestToggleHabitDay_RoundTrip(t *testing.T) {
	t.Parallel()

	habit := &models.Habit{Name: "morning review", Streak: 3}
	today := day(2024, 1, 10)

	marked, _ := ToggleHabitDay(habit, today)
	if !marked {
		t.Fatal("first toggle should mark the day")
	}
	if habit.Streak != 4 {
		t.Errorf("streak after mark = %d, want 4", habit.Streak)
	}
	if !habit.CompletedOn(DateKey(today)) {
		t.Error("date key should be in the completed set")
	}

	marked, events := ToggleHabitDay(habit, today)
	if marked {
		t.Fatal("second toggle should unmark the day")
	}
	if habit.Streak != 3 {
		t.Errorf("streak after unmark = %d, want prior value 3", habit.Streak)
	}
	if habit.CompletedOn(DateKey(today)) {
		t.Error("date key should be removed from the completed set")
	}
	if len(events) != 0 {
		t.Errorf("unmark emitted %d events, want 0", len(events))
	}
}

func TestToggleHabitDay_ClampsAtZero(t *testing.T) {
	t.Parallel()

	habit := &models.Habit{Name: "stretch", Streak: 0, CompletedDates: []string{"2024-01-10"}}
	ToggleHabitDay(habit, day(2024, 1, 10))
	if habit.Streak != 0 {
		t.Errorf("streak = %d, want clamp at 0", habit.Streak)
	}
}

func TestToggleHabitDay_Milestones(t *testing.T) {
	t.Parallel()

	habit := &models.Habit{Name: "read", Streak: 6}
	_, events := ToggleHabitDay(habit, day(2024, 1, 10))
	if len(events) != 1 || events[0].Kind != EventHabitMilestone || events[0].Value != 7 {
		t.Errorf("expected 7-day milestone event, got %+v", events)
	}
}
