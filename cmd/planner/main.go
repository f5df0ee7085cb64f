package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/manisharan-deep/study-planner/cmd/planner/commands"
)

func main() {
	// Optional .env for overrides; absence is not an error.
	_ = godotenv.Load()

	var rootCmd = &cobra.Command{
		Use:   "planner",
		Short: "Personal study planner",
		Long:  "Track study tasks, habits, notes, and focus sessions from the terminal",
	}

	rootCmd.AddCommand(commands.NewTaskCmd())
	rootCmd.AddCommand(commands.NewHabitCmd())
	rootCmd.AddCommand(commands.NewNoteCmd())
	rootCmd.AddCommand(commands.NewGoalCmd())
	rootCmd.AddCommand(commands.NewGroupCmd())
	rootCmd.AddCommand(commands.NewTimerCmd())
	rootCmd.AddCommand(commands.NewStatsCmd())
	rootCmd.AddCommand(commands.NewQuoteCmd())
	rootCmd.AddCommand(commands.NewSettingsCmd())
	rootCmd.AddCommand(commands.NewExportCmd())
	rootCmd.AddCommand(commands.NewImportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
