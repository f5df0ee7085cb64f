package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/manisharan-deep/study-planner/internal/config"
	"github.com/manisharan-deep/study-planner/internal/planner"
)

// NewGoalCmd creates the goal command group
func NewGoalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage study goals",
	}
	cmd.AddCommand(newGoalSetCmd())
	cmd.AddCommand(newGoalShowCmd())
	return cmd
}

func newGoalSetCmd() *cobra.Command {
	var dailyMinutes, dailyTasks, weeklyMinutes int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set study targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				goals := p.Goals()
				if cmd.Flags().Changed("daily-minutes") {
					goals.DailyStudyMinutes = dailyMinutes
				}
				if cmd.Flags().Changed("daily-tasks") {
					goals.DailyTasks = dailyTasks
				}
				if cmd.Flags().Changed("weekly-minutes") {
					goals.WeeklyStudyMinutes = weeklyMinutes
				}
				if err := p.SetGoals(goals); err != nil {
					return err
				}
				fmt.Println("Goals updated")
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&dailyMinutes, "daily-minutes", 0, "Daily study minutes target")
	cmd.Flags().IntVar(&dailyTasks, "daily-tasks", 0, "Daily completed tasks target")
	cmd.Flags().IntVar(&weeklyMinutes, "weekly-minutes", 0, "Weekly study minutes target")
	return cmd
}

func newGoalShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show today's and this week's progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				daily := p.DailyProgress()
				weekly := p.WeeklyProgress()
				fmt.Printf("Today:     %d/%d minutes, %d/%d tasks\n",
					daily.StudyMinutesDone, daily.StudyMinutesTarget,
					daily.TasksDone, daily.TasksTarget)
				fmt.Printf("This week: %d/%d minutes\n",
					weekly.StudyMinutesDone, weekly.StudyMinutesTarget)
				return nil
			})
		},
	}
}
