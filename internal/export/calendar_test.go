package export

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/manisharan-deep/study-planner/internal/models"
)

func dueTask(title string, due time.Time) *models.Task {
	return &models.Task{
		ID:       uuid.New(),
		Title:    title,
		Category: models.CategoryOther,
		Priority: models.PriorityMedium,
		DueDate:  &due,
	}
}

func TestCalendarSkipsTasksWithoutDueDate(t *testing.T) {
	t.Parallel()

	due := time.Date(2025, time.April, 1, 9, 30, 0, 0, time.UTC)
	doc := Calendar([]*models.Task{
		dueTask("Exam", due),
		{ID: uuid.New(), Title: "No deadline"},
	})

	if got := strings.Count(doc, "BEGIN:VEVENT"); got != 1 {
		t.Errorf("events = %d, want 1", got)
	}
	if strings.Contains(doc, "No deadline") {
		t.Error("undated task leaked into the calendar")
	}
}

func TestCalendarEventFormat(t *testing.T) {
	t.Parallel()

	due := time.Date(2025, time.April, 1, 9, 30, 0, 0, time.UTC)
	task := dueTask("Exam", due)
	doc := Calendar([]*models.Task{task})

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Study Planner//EN",
		"UID:" + task.ID.String() + "@study-planner",
		"DTSTART:20250401T093000Z",
		"SUMMARY:Exam",
		"END:VCALENDAR",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestCalendarConvertsDueDateToUTC(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+2", 2*60*60)
	due := time.Date(2025, time.April, 1, 11, 30, 0, 0, loc)
	doc := Calendar([]*models.Task{dueTask("Exam", due)})

	if !strings.Contains(doc, "DTSTART:20250401T093000Z") {
		t.Errorf("timestamp not normalized to UTC:\n%s", doc)
	}
}

func TestCalendarEscapesSpecialCharacters(t *testing.T) {
	t.Parallel()

	due := time.Date(2025, time.April, 1, 9, 0, 0, 0, time.UTC)
	task := dueTask("Read, revise; repeat", due)
	task.Description = "line one\nline two"
	doc := Calendar([]*models.Task{task})

	if !strings.Contains(doc, `SUMMARY:Read\, revise\; repeat`) {
		t.Errorf("summary not escaped:\n%s", doc)
	}
	if !strings.Contains(doc, `DESCRIPTION:line one\nline two`) {
		t.Errorf("description newline not escaped:\n%s", doc)
	}
}
