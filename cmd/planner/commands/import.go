package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/manisharan-deep/study-planner/internal/config"
	"github.com/manisharan-deep/study-planner/internal/export"
	"github.com/manisharan-deep/study-planner/internal/planner"
)

// NewImportCmd creates the import command
func NewImportCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import <backup-file>",
		Short: "Restore planner data from a JSON backup",
		Long:  "Validate and load a backup. An invalid document leaves current data untouched.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read backup: %w", err)
			}
			bundle, err := export.ParseBundle(data)
			if err != nil {
				return err
			}
			if !yes && !confirmReplace(cmd.InOrStdin(), cmd.OutOrStdout()) {
				fmt.Println("Import cancelled")
				return nil
			}
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				if err := p.ImportBundle(bundle); err != nil {
					return err
				}
				fmt.Printf("Imported %d tasks, %d habits, %d notes\n",
					len(bundle.Tasks), len(bundle.Habits), len(bundle.Notes))
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// confirmReplace asks before the restore overwrites current data. Anything
// but an explicit yes declines.
func confirmReplace(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "This will replace all your current data. Continue? [y/N] ")
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
