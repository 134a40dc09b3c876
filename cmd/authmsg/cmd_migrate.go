package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"authmsg/internal/config"
	"authmsg/internal/infrastructure/database"
	"authmsg/internal/infrastructure/logging"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.DatabaseURL == "" {
			return errors.New("migrate: DATABASE_URL is not set")
		}
		logger := logging.New(os.Stderr, cfg.LogLevel, false)
		return database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger)
	},
}
