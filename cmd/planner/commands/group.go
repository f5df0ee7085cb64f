package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/manisharan-deep/study-planner/internal/config"
	"github.com/manisharan-deep/study-planner/internal/planner"
)

// NewGroupCmd creates the study group command group
func NewGroupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Manage study groups",
	}
	cmd.AddCommand(newGroupCreateCmd())
	cmd.AddCommand(newGroupJoinCmd())
	cmd.AddCommand(newGroupListCmd())
	return cmd
}

func newGroupCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a study group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				group, err := p.CreateGroup(args[0])
				if err != nil {
					return err
				}
				fmt.Printf("Created group %q, invite code %s\n", group.Name, group.Code)
				return nil
			})
		},
	}
}

func newGroupJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <code>",
		Short: "Join a study group by invite code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				group, err := p.JoinGroup(args[0])
				if err != nil {
					return err
				}
				fmt.Printf("Joined %q (%d members)\n", group.Name, len(group.Members))
				return nil
			})
		},
	}
}

func newGroupListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List study groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPlanner(func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error {
				groups := p.Groups()
				if len(groups) == 0 {
					fmt.Println("No study groups yet")
					return nil
				}
				for _, g := range groups {
					fmt.Printf("%s  %s (code %s, %d members)\n", g.ID, g.Name, g.Code, len(g.Members))
				}
				return nil
			})
		},
	}
}
