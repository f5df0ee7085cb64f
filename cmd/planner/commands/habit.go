package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/manisharan-deep/study-planner/internal/config"
	"github.com/manisharan-deep/study-planner/internal/planner"
)

// NewHabitCmd creates the habit command group
func NewHabitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage daily habits",
	}
	cmd.AddCommand(newHabitAddCmd())
	cmd.AddCommand(newHabitListCmd())
	cmd.AddCommand(newHabitToggleCmd())
	cmd.AddCommand(newHabitDeleteCmd())
	return cmd
}

func newHabitAddCmd() *cobra.Command {
	var description, frequency, bestTime, icon string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				habit, err := p.AddHabit(planner.HabitInput{
					Name:        args[0],
					Description: description,
					Frequency:   frequency,
					BestTime:    bestTime,
					Icon:        icon,
				})
				if err != nil {
					return err
				}
				fmt.Printf("Added habit %s: %s\n", habit.ID, habit.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Habit description")
	cmd.Flags().StringVarP(&frequency, "frequency", "f", "daily", "Frequency (daily, weekly, weekdays)")
	cmd.Flags().StringVar(&bestTime, "best-time", "", "Preferred time of day")
	cmd.Flags().StringVar(&icon, "icon", "", "Display icon")
	return cmd
}

func newHabitListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List habits with today's completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				habits := p.Habits()
				if len(habits) == 0 {
					fmt.Println("No habits yet")
					return nil
				}
				stats := p.HabitOverview()
				fmt.Printf("%d/%d done today (%d%%), longest streak %d\n\n",
					stats.CompletedToday, stats.Active, stats.CompletionRate, stats.LongestStreak)
				for _, h := range habits {
					fmt.Printf("%s  %s (%s) streak %d\n", h.ID, h.Name, h.Frequency, h.Streak)
				}
				return nil
			})
		},
	}
}

func newHabitToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <habit-id>",
		Short: "Mark or unmark today's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid habit id: %w", err)
			}
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				_, err := p.ToggleHabit(id)
				return err
			})
		},
	}
}

func newHabitDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <habit-id>",
		Short: "Delete a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid habit id: %w", err)
			}
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				if err := p.DeleteHabit(id); err != nil {
					return err
				}
				fmt.Println("Habit deleted")
				return nil
			})
		},
	}
}
