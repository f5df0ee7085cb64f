package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/manisharan-deep/study-planner/internal/config"
	"github.com/manisharan-deep/study-planner/internal/planner"
)

// NewExportCmd creates the export command group
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export planner data",
	}
	cmd.AddCommand(newExportDataCmd())
	cmd.AddCommand(newExportCalendarCmd())
	return cmd
}

func newExportDataCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "data",
		Short: "Write a full JSON backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				data, err := p.ExportBundle().Marshal()
				if err != nil {
					return err
				}
				if err := os.WriteFile(output, data, 0o600); err != nil {
					return fmt.Errorf("write backup: %w", err)
				}
				fmt.Printf("Exported data to %s\n", output)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "study-planner-backup.json", "Output file")
	return cmd
}

func newExportCalendarCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Write due-dated tasks as an iCalendar file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				doc := p.CalendarDocument()
				if err := os.WriteFile(output, []byte(doc), 0o600); err != nil {
					return fmt.Errorf("write calendar: %w", err)
				}
				fmt.Printf("Exported calendar to %s\n", output)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "study-planner.ics", "Output file")
	return cmd
}
