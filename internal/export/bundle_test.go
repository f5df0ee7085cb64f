package export

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/manisharan-deep/study-planner/internal/engine"
	"github.com/manisharan-deep/study-planner/internal/models"
)

func TestBundleMarshalParseRoundTrip(t *testing.T) {
	t.Parallel()

	completedAt := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	goals := engine.DefaultGoals()
	in := &Bundle{
		Tasks: []*models.Task{{
			ID:          uuid.New(),
			Title:       "Finish lab report",
			Category:    models.CategoryScience,
			Priority:    models.PriorityHigh,
			Completed:   true,
			CompletedAt: &completedAt,
		}},
		Goals: &goals,
		Habits: []*models.Habit{{
			ID:        uuid.New(),
			Name:      "Flashcards",
			Frequency: models.FrequencyDaily,
			Streak:    3,
		}},
		ExportDate: time.Date(2025, time.March, 2, 8, 0, 0, 0, time.UTC),
	}

	data, err := in.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	out, err := ParseBundle(data)
	if err != nil {
		t.Fatalf("ParseBundle: %v", err)
	}

	if len(out.Tasks) != 1 || out.Tasks[0].Title != "Finish lab report" {
		t.Errorf("tasks = %+v", out.Tasks)
	}
	if out.Goals == nil || *out.Goals != goals {
		t.Errorf("goals = %+v", out.Goals)
	}
	if len(out.Habits) != 1 || out.Habits[0].Streak != 3 {
		t.Errorf("habits = %+v", out.Habits)
	}
	if !out.ExportDate.Equal(in.ExportDate) {
		t.Errorf("export date = %v", out.ExportDate)
	}
}

func TestParseBundleRejectsMalformedDocuments(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			"not json",
			`{tasks`,
			"parse import document",
		},
		{
			"task without title",
			`{"tasks":[{"title":"","category":"math","priority":"low"}]}`,
			"title is required",
		},
		{
			"task with unknown category",
			`{"tasks":[{"title":"x","category":"cooking","priority":"low"}]}`,
			"invalid category",
		},
		{
			"task with unknown priority",
			`{"tasks":[{"title":"x","category":"math","priority":"whenever"}]}`,
			"invalid priority",
		},
		{
			"recurring task without pattern",
			`{"tasks":[{"title":"x","category":"math","priority":"low","recurring":true}]}`,
			"invalid recurrence pattern",
		},
		{
			"completed without timestamp",
			`{"tasks":[{"title":"x","category":"math","priority":"low","completed":true}]}`,
			"completion timestamp",
		},
		{
			"negative goal target",
			`{"tasks":[],"goals":{"daily_study_minutes":-5}}`,
			"goals",
		},
		{
			"habit without name",
			`{"tasks":[],"habits":[{"name":""}]}`,
			"name is required",
		},
		{
			"habit with negative streak",
			`{"tasks":[],"habits":[{"name":"x","streak":-1}]}`,
			"streak must be non-negative",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			b, err := ParseBundle([]byte(tc.doc))
			if err == nil {
				t.Fatalf("parsed invalid document: %+v", b)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tc.wantErr)
			}
		})
	}
}

func TestParseBundleAllowsAbsentCollections(t *testing.T) {
	t.Parallel()

	b, err := ParseBundle([]byte(`{"tasks":[]}`))
	if err != nil {
		t.Fatalf("ParseBundle: %v", err)
	}
	if b.Goals != nil || b.Settings != nil || b.Analytics != nil {
		t.Error("absent collections should stay nil so an import keeps current values")
	}
}
