package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/manisharan-deep/study-planner/internal/config"
	"github.com/manisharan-deep/study-planner/internal/planner"
)

// NewTaskCmd creates the task command group
func NewTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage study tasks",
	}
	cmd.AddCommand(newTaskAddCmd())
	cmd.AddCommand(newTaskEditCmd())
	cmd.AddCommand(newTaskListCmd())
	cmd.AddCommand(newTaskDoneCmd())
	cmd.AddCommand(newTaskDeleteCmd())
	cmd.AddCommand(newTaskSubtaskCmd())
	return cmd
}

func newTaskAddCmd() *cobra.Command {
	var (
		description string
		category    string
		priority    string
		due         string
		hours       float64
		recurrence  string
		subtasks    []string
		notes       string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				input := planner.TaskInput{
					Title:          args[0],
					Description:    description,
					Category:       category,
					Priority:       priority,
					EstimatedHours: hours,
					Subtasks:       subtasks,
					Notes:          notes,
				}
				if due != "" {
					dueDate, err := parseDueDate(due)
					if err != nil {
						return err
					}
					input.DueDate = &dueDate
				}
				if recurrence != "" {
					input.Recurring = true
					input.RecurrencePattern = recurrence
				}

				task, err := p.AddTask(input)
				if err != nil {
					return err
				}
				fmt.Printf("Added task %s: %s\n", task.ID, task.Title)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&category, "category", "c", "other", "Category (math, science, history, language, other)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (urgent, high, medium, low, optional)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (2006-01-02 or 2006-01-02 15:04)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Estimated hours")
	cmd.Flags().StringVar(&recurrence, "repeat", "", "Recurrence pattern (daily, weekly, monthly)")
	cmd.Flags().StringSliceVar(&subtasks, "subtask", nil, "Subtask (repeatable)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	return cmd
}

func newTaskEditCmd() *cobra.Command {
	var (
		title       string
		description string
		category    string
		priority    string
		due         string
		hours       float64
		recurrence  string
		notes       string
	)

	cmd := &cobra.Command{
		Use:   "edit <task-id>",
		Short: "Edit a task's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id: %w", err)
			}
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				existing := p.ListTasks(planner.TaskFilter{})
				var current *planner.TaskInput
				for _, t := range existing {
					if t.ID == id {
						current = &planner.TaskInput{
							Title:             t.Title,
							Description:       t.Description,
							Category:          string(t.Category),
							Priority:          string(t.Priority),
							DueDate:           t.DueDate,
							EstimatedHours:    t.EstimatedHours,
							Recurring:         t.Recurring,
							RecurrencePattern: string(t.RecurrencePattern),
							Notes:             t.Notes,
						}
						break
					}
				}
				if current == nil {
					return fmt.Errorf("task %s not found", id)
				}

				if cmd.Flags().Changed("title") {
					current.Title = title
				}
				if cmd.Flags().Changed("description") {
					current.Description = description
				}
				if cmd.Flags().Changed("category") {
					current.Category = category
				}
				if cmd.Flags().Changed("priority") {
					current.Priority = priority
				}
				if cmd.Flags().Changed("due") {
					dueDate, err := parseDueDate(due)
					if err != nil {
						return err
					}
					current.DueDate = &dueDate
				}
				if cmd.Flags().Changed("hours") {
					current.EstimatedHours = hours
				}
				if cmd.Flags().Changed("repeat") {
					current.Recurring = recurrence != ""
					current.RecurrencePattern = recurrence
				}
				if cmd.Flags().Changed("notes") {
					current.Notes = notes
				}

				task, err := p.EditTask(id, *current)
				if err != nil {
					return err
				}
				fmt.Printf("Updated task: %s\n", task.Title)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "New category")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "New priority")
	cmd.Flags().StringVar(&due, "due", "", "New due date")
	cmd.Flags().Float64Var(&hours, "hours", 0, "New estimated hours")
	cmd.Flags().StringVar(&recurrence, "repeat", "", "New recurrence pattern (empty clears)")
	cmd.Flags().StringVar(&notes, "notes", "", "New free-form notes")
	return cmd
}

func newTaskListCmd() *cobra.Command {
	var category, priority, status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				tasks := p.ListTasks(planner.TaskFilter{
					Category: category,
					Priority: priority,
					Status:   status,
				})
				if len(tasks) == 0 {
					fmt.Println("No tasks found")
					return nil
				}
				for _, t := range tasks {
					line := fmt.Sprintf("%s %s  %s (%s/%s)", checkbox(t.Completed), t.ID, t.Title, t.Category, t.Priority)
					if done, total := t.SubtaskProgress(); total > 0 {
						line += fmt.Sprintf(" [%d/%d]", done, total)
					}
					fmt.Println(line)
					if t.DueDate != nil {
						fmt.Printf("      due %s\n", t.DueDate.Format("2006-01-02 15:04"))
					}
					for i, sub := range t.Subtasks {
						fmt.Printf("      %s %d. %s\n", checkbox(sub.Completed), i, sub.Text)
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Filter by priority")
	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status (pending, completed)")
	return cmd
}

func newTaskDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <task-id>",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id: %w", err)
			}
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				task, err := p.ToggleTask(id)
				if err != nil {
					return err
				}
				if task.Completed {
					fmt.Printf("Completed: %s\n", task.Title)
				} else {
					fmt.Printf("Reopened: %s\n", task.Title)
				}
				return nil
			})
		},
	}
}

func newTaskDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id: %w", err)
			}
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				if err := p.DeleteTask(id); err != nil {
					return err
				}
				fmt.Println("Task deleted")
				return nil
			})
		},
	}
}

func newTaskSubtaskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subtask <task-id> <index>",
		Short: "Toggle one subtask checkbox",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id: %w", err)
			}
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid subtask index: %w", err)
			}
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				return p.ToggleSubtask(id, index)
			})
		},
	}
}

func parseDueDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid due date %q (expected 2006-01-02 or 2006-01-02 15:04)", value)
}
