package commands

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/manisharan-deep/study-planner/internal/config"
	"github.com/manisharan-deep/study-planner/internal/logger"
	"github.com/manisharan-deep/study-planner/internal/notify"
	"github.com/manisharan-deep/study-planner/internal/planner"
	"github.com/manisharan-deep/study-planner/internal/store"
)

// runWithPlanner loads configuration, opens the store, builds a planner, and
// runs fn with everything wired. Every command goes through here so setup and
// teardown stay in one place.
func runWithPlanner(fn func(ctx context.Context, p *planner.Planner, cfg *config.Config, log *zap.Logger) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zapLogger, err := logger.New(cfg.Debug, false)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync(zapLogger)
	}()

	st, err := store.Open(cfg.DatabasePath())
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close store: %v\n", err)
		}
	}()

	ctx := context.Background()
	p, err := planner.New(ctx, st, zapLogger,
		planner.WithNotifier(notify.NewConsoleNotifier(os.Stdout)),
	)
	if err != nil {
		return fmt.Errorf("failed to load planner state: %w", err)
	}

	return fn(ctx, p, cfg, zapLogger)
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
