package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"authmsg/internal/application"
	"authmsg/internal/config"
	"authmsg/internal/infrastructure/database"
	"authmsg/internal/infrastructure/logging"
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete unmatched messages older than UNMATCHED_RETENTION",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("prune: DATABASE_URL is not set")
		}
		logger := logging.New(os.Stderr, cfg.LogLevel, false)

		pool, err := database.NewPool(cmd.Context(), cfg.DatabaseURL, logger)
		if err != nil {
			return err
		}
		defer pool.Close()

		svc := application.NewUnmatchedService(database.NewUnmatchedRepository(pool), nil)
		n, err := svc.PruneUnmatched(cmd.Context(), cfg.UnmatchedRetention)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "pruned %d unmatched messages\n", n)
		return nil
	},
}
