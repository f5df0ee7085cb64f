package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/manisharan-deep/study-planner/internal/config"
	"github.com/manisharan-deep/study-planner/internal/planner"
)

// NewSettingsCmd creates the settings command group
func NewSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change preferences",
	}
	cmd.AddCommand(newSettingsShowCmd())
	cmd.AddCommand(newSettingsSetCmd())
	return cmd
}

func newSettingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				s := p.Settings()
				fmt.Printf("Dark mode:        %v\n", s.DarkMode)
				fmt.Printf("Theme color:      %s\n", s.ThemeColor)
				fmt.Printf("Task reminders:   %v\n", s.TaskReminders)
				fmt.Printf("Break reminders:  %v\n", s.BreakReminders)
				fmt.Printf("Streak reminders: %v\n", s.StreakReminders)
				return nil
			})
		},
	}
}

func newSettingsSetCmd() *cobra.Command {
	var (
		darkMode        bool
		themeColor      string
		taskReminders   bool
		breakReminders  bool
		streakReminders bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings; only flags you pass are updated",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				s := p.Settings()
				if cmd.Flags().Changed("dark-mode") {
					s.DarkMode = darkMode
				}
				if cmd.Flags().Changed("theme") {
					s.ThemeColor = themeColor
				}
				if cmd.Flags().Changed("task-reminders") {
					s.TaskReminders = taskReminders
				}
				if cmd.Flags().Changed("break-reminders") {
					s.BreakReminders = breakReminders
				}
				if cmd.Flags().Changed("streak-reminders") {
					s.StreakReminders = streakReminders
				}
				p.UpdateSettings(s)
				fmt.Println("Settings updated")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&darkMode, "dark-mode", false, "Enable dark mode")
	cmd.Flags().StringVar(&themeColor, "theme", "", "Theme color")
	cmd.Flags().BoolVar(&taskReminders, "task-reminders", true, "Enable task due reminders")
	cmd.Flags().BoolVar(&breakReminders, "break-reminders", true, "Enable break reminders")
	cmd.Flags().BoolVar(&streakReminders, "streak-reminders", true, "Enable streak reminders")
	return cmd
}
