package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manisharan-deep/study-planner/internal/planner"
)

// NewQuoteCmd creates the quote command
func NewQuoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote",
		Short: "Print a motivational quote",
		Run: func(cmd *cobra.Command, args []string) {
			q := planner.RandomQuote()
			fmt.Printf("%q - %s\n", q.Text, q.Author)
		},
	}
}
