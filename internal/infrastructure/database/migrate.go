package database

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations brings the unmatched_messages schema up to date. Migrations
// come from migrationsPath when set, from the copy built into the binary
// otherwise. A database left dirty by a failed run is reported as an error.
func RunMigrations(dsn string, migrationsPath string, logger *slog.Logger) error {
	m, err := newMigrate(dsn, migrationsPath)
	if err != nil {
		return fmt.Errorf("migration init: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("migration version %d is dirty", version)
	}
	logger.Info("migrations applied", "version", version, "source", migrationSource(migrationsPath))
	return nil
}

func newMigrate(dsn, migrationsPath string) (*migrate.Migrate, error) {
	if migrationsPath != "" {
		return migrate.New(migrationSource(migrationsPath), dsn)
	}
	src, err := embeddedMigrations()
	if err != nil {
		return nil, err
	}
	return migrate.NewWithSourceInstance("iofs", src, dsn)
}

func embeddedMigrations() (source.Driver, error) {
	return iofs.New(migrationsFS, "migrations")
}

func migrationSource(migrationsPath string) string {
	if migrationsPath == "" {
		return "embedded"
	}
	return "file://" + migrationsPath
}
