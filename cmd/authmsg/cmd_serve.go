package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	discordadapter "authmsg/internal/adapters/discord"
	httpadapter "authmsg/internal/adapters/http"
	"authmsg/internal/application"
	"authmsg/internal/config"
	"authmsg/internal/infrastructure/database"
	"authmsg/internal/infrastructure/i18n"
	"authmsg/internal/infrastructure/logging"
	"authmsg/internal/infrastructure/memory"
	"authmsg/internal/ports/output"
	"authmsg/pkg/tz"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP localization API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, cfg.LogLevel, false)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openUnmatchedRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	// A nil interface keeps notifications disabled.
	var notifier output.UnmatchedNotifier
	if cfg.DiscordWebhookURL != "" {
		n, err := discordadapter.NewNotifier(cfg.DiscordWebhookURL, tz.Load(cfg.Timezone))
		if err != nil {
			return fmt.Errorf("create discord notifier: %w", err)
		}
		notifier = n
		logger.Info("discord notifications enabled")
	}

	translator := i18n.NewTranslator(cfg.DefaultLocale, logger)
	logger.Info("catalogs loaded", "default_locale", translator.DefaultLocale(), "locales", translator.Locales())
	localizeSvc := application.NewLocalizeService(nil, translator, repo, notifier, logger)
	unmatchedSvc := application.NewUnmatchedService(repo, notifier)

	mux := http.NewServeMux()
	httpadapter.RegisterRoutes(mux, localizeSvc, unmatchedSvc)
	server := httpadapter.NewServer(cfg.HTTPAddr, httpadapter.Recovery(httpadapter.Logging(mux, logger), logger), logger)

	if notifier != nil {
		scheduler := discordadapter.NewDigestScheduler(unmatchedSvc, cfg.DigestInterval, cfg.UnmatchedRetention, cfg.DigestLimit, logger)
		go scheduler.Run(ctx)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

// openUnmatchedRepository returns the Postgres repository when DATABASE_URL
// is set and the in-memory one otherwise.
func openUnmatchedRepository(ctx context.Context, cfg *config.Config, logger *slog.Logger) (output.UnmatchedRepository, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, unmatched messages are kept in memory")
		return memory.NewUnmatchedRepository(), func() {}, nil
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		return nil, nil, err
	}
	pool, err := database.NewPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return nil, nil, err
	}
	return database.NewUnmatchedRepository(pool), pool.Close, nil
}
