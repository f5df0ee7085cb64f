package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/manisharan-deep/study-planner/internal/config"
	"github.com/manisharan-deep/study-planner/internal/models"
	"github.com/manisharan-deep/study-planner/internal/planner"
)

// NewNoteCmd creates the note command group
func NewNoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage study notes",
	}
	cmd.AddCommand(newNoteAddCmd())
	cmd.AddCommand(newNoteListCmd())
	cmd.AddCommand(newNoteSearchCmd())
	cmd.AddCommand(newNoteEditCmd())
	cmd.AddCommand(newNoteDeleteCmd())
	return cmd
}

func newNoteAddCmd() *cobra.Command {
	var category, content string
	var tags []string
	var private bool

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				note, err := p.AddNote(planner.NoteInput{
					Title:    args[0],
					Category: category,
					Tags:     tags,
					Content:  content,
					Private:  private,
				})
				if err != nil {
					return err
				}
				fmt.Printf("Added note %s: %s\n", note.ID, note.Title)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Note category")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Tag (repeatable)")
	cmd.Flags().StringVar(&content, "content", "", "Note body")
	cmd.Flags().BoolVar(&private, "private", false, "Hide from group sharing")
	return cmd
}

func newNoteListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				printNotes(p.Notes(category))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category")
	return cmd
}

func newNoteSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search notes by title, content, or tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				printNotes(p.SearchNotes(args[0]))
				return nil
			})
		},
	}
}

func newNoteEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <note-id> <content>",
		Short: "Replace a note's content",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid note id: %w", err)
			}
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				note, err := p.UpdateNoteContent(id, args[1])
				if err != nil {
					return err
				}
				fmt.Printf("Updated %s (%d words)\n", note.Title, note.WordCount())
				return nil
			})
		},
	}
}

func newNoteDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <note-id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid note id: %w", err)
			}
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				if err := p.DeleteNote(id); err != nil {
					return err
				}
				fmt.Println("Note deleted")
				return nil
			})
		},
	}
}

func printNotes(notes []*models.Note) {
	if len(notes) == 0 {
		fmt.Println("No notes found")
		return
	}
	for _, n := range notes {
		line := fmt.Sprintf("%s  %s", n.ID, n.Title)
		if n.Category != "" {
			line += fmt.Sprintf(" [%s]", n.Category)
		}
		if len(n.Tags) > 0 {
			line += " #" + strings.Join(n.Tags, " #")
		}
		fmt.Println(line)
	}
}
