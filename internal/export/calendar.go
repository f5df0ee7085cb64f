// Package export builds the calendar and backup documents produced by the
// planner. Generation is pure formatting over in-memory state.
package export

import (
	"fmt"
	"strings"

	"github.com/manisharan-deep/study-planner/internal/models"
)

// icsTimestampLayout is the compact UTC form used in VEVENT blocks.
const icsTimestampLayout = "20060102T150405Z"

// Calendar renders tasks with due dates as an iCalendar document, one VEVENT
// per task with a stable per-task identifier.
func Calendar(tasks []*models.Task) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\n")
	b.WriteString("VERSION:2.0\n")
	b.WriteString("PRODID:-//Study Planner//EN\n")

	for _, task := range tasks {
		if task.DueDate == nil {
			continue
		}
		fmt.Fprintf(&b, "BEGIN:VEVENT\n")
		fmt.Fprintf(&b, "UID:%s@study-planner\n", task.ID)
		fmt.Fprintf(&b, "DTSTART:%s\n", task.DueDate.UTC().Format(icsTimestampLayout))
		fmt.Fprintf(&b, "SUMMARY:%s\n", escapeICSText(task.Title))
		fmt.Fprintf(&b, "DESCRIPTION:%s\n", escapeICSText(task.Description))
		fmt.Fprintf(&b, "END:VEVENT\n")
	}

	b.WriteString("END:VCALENDAR")
	return b.String()
}

func escapeICSText(s string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		"\n", "\\n",
		",", "\\,",
		";", "\\;",
	)
	return replacer.Replace(s)
}
