package engine

import (
	"testing"
	"time"
)

func TestLedger_AddStudyMinutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		amounts []int
		want    int
	}{
		{"single record", []int{30}, 30},
		{"accumulates across calls", []int{30, 45, 15}, 90},
		{"negative amounts ignored", []int{30, -10}, 30},
		{"zero ignored", []int{0}, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ledger := NewLedger()
			for _, m := range tt.amounts {
				ledger.AddStudyMinutes("2024-01-10", m)
			}
			if got := ledger.MinutesOn("2024-01-10"); got != tt.want {
				t.Errorf("MinutesOn = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLedger_UnknownKeysReturnZero(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	if got := ledger.MinutesOn("1999-12-31"); got != 0 {
		t.Errorf("MinutesOn unknown key = %d, want 0", got)
	}
	if got := ledger.TasksOn("1999-12-31"); got != 0 {
		t.Errorf("TasksOn unknown key = %d, want 0", got)
	}
}

func TestLedger_AddTaskCompletion(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	ledger.AddTaskCompletion("2024-01-10")
	ledger.AddTaskCompletion("2024-01-10")
	ledger.AddTaskCompletion("2024-01-11")

	if got := ledger.TasksOn("2024-01-10"); got != 2 {
		t.Errorf("TasksOn(2024-01-10) = %d, want 2", got)
	}
	if got := ledger.TasksOn("2024-01-11"); got != 1 {
		t.Errorf("TasksOn(2024-01-11) = %d, want 1", got)
	}
}

func TestLedger_WeeklySeries(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	reference := time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)
	ledger.AddStudyMinutes("2024-01-04", 10) // oldest day in window
	ledger.AddStudyMinutes("2024-01-08", 25)
	ledger.AddStudyMinutes("2024-01-10", 40) // reference day
	ledger.AddStudyMinutes("2024-01-03", 99) // outside window

	got := ledger.WeeklySeries(reference)
	want := []int{10, 0, 0, 0, 25, 0, 40}
	if len(got) != len(want) {
		t.Fatalf("series length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("series[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestLedger_TotalMinutes(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	if got := ledger.TotalMinutes(); got != 0 {
		t.Errorf("empty ledger TotalMinutes = %d, want 0", got)
	}
	ledger.AddStudyMinutes("2024-01-01", 100)
	ledger.AddStudyMinutes("2024-02-01", 250)
	if got := ledger.TotalMinutes(); got != 350 {
		t.Errorf("TotalMinutes = %d, want 350", got)
	}
}
