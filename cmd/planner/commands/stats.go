package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/manisharan-deep/study-planner/internal/config"
	"github.com/manisharan-deep/study-planner/internal/planner"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)

	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	quoteStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
)

// NewStatsCmd creates the stats dashboard command
func NewStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the study dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				d := p.Dashboard()

				var b strings.Builder
				b.WriteString(titleStyle.Render("Study Dashboard"))
				b.WriteString("\n")

				b.WriteString(sectionStyle.Render("Today"))
				b.WriteString(fmt.Sprintf("\n  Study time: %d/%d min\n", d.Daily.StudyMinutesDone, d.Daily.StudyMinutesTarget))
				b.WriteString(fmt.Sprintf("  Tasks:      %d/%d today, %d/%d overall\n", d.Daily.TasksDone, d.Daily.TasksTarget, d.TasksDone, d.TasksTotal))
				b.WriteString(fmt.Sprintf("  Sessions:   %d today, %d total (avg %d min)\n\n", d.Sessions.Today, d.Sessions.Total, d.FocusStats.AverageSessionMinutes))

				b.WriteString(sectionStyle.Render("This week"))
				b.WriteString(fmt.Sprintf("\n  Study time: %d/%d min\n", d.Weekly.StudyMinutesDone, d.Weekly.StudyMinutesTarget))
				b.WriteString(weeklyBars(d.WeeklySeries))
				b.WriteString("\n")

				b.WriteString(sectionStyle.Render("Progress"))
				b.WriteString(fmt.Sprintf("\n  Level %d, %d/%d XP, %d points\n", d.Gamification.Level, d.Gamification.XP, d.XPNeeded, d.Gamification.Points))
				b.WriteString(fmt.Sprintf("  Streak: %d days (best %d)\n", d.Streaks.Current, d.Streaks.Best))
				if len(d.Achievements) > 0 {
					b.WriteString(fmt.Sprintf("  Achievements: %s\n", strings.Join(d.Achievements, ", ")))
				}
				b.WriteString("\n")
				b.WriteString(quoteStyle.Render(fmt.Sprintf("%q - %s", d.Quote.Text, d.Quote.Author)))

				fmt.Println(boxStyle.Render(b.String()))
				return nil
			})
		},
	}
}

// weeklyBars renders the last seven days of study minutes, oldest first.
func weeklyBars(series []int) string {
	max := 0
	for _, v := range series {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		max = 1
	}

	const width = 20
	var b strings.Builder
	for i, v := range series {
		bar := strings.Repeat("█", v*width/max)
		label := fmt.Sprintf("  %dd ago", len(series)-1-i)
		if i == len(series)-1 {
			label = "  today "
		}
		b.WriteString(fmt.Sprintf("%s %s %d\n", label, barStyle.Render(bar), v))
	}
	return b.String()
}
