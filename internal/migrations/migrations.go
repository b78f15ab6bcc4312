package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed source/*.sql
var sourceFiles embed.FS

//go:embed target/*.sql
var targetFiles embed.FS

// Set is one embedded migration sequence bound to its own database.
type Set struct {
	Name            string
	Files           fs.FS
	Dir             string
	MigrationsTable string
}

var (
	// Source creates the measurement and credential tables read by the data API.
	Source = Set{Name: "source", Files: sourceFiles, Dir: "source", MigrationsTable: "schema_migrations_source"}

	// Target creates the signal dictionary and the 10-minute aggregate table.
	Target = Set{Name: "target", Files: targetFiles, Dir: "target", MigrationsTable: "schema_migrations_target"}
)

// RunMigrations executes all pending migrations of set against db.
// If autoMigrate is false, it only logs the current version and applies nothing.
func RunMigrations(db *sql.DB, set Set, autoMigrate bool) error {
	sourceDriver, err := iofs.New(set.Files, set.Dir)
	if err != nil {
		return fmt.Errorf("failed to create %s migration source: %w", set.Name, err)
	}

	dbDriver, err := postgres.WithInstance(db, &postgres.Config{MigrationsTable: set.MigrationsTable})
	if err != nil {
		return fmt.Errorf("failed to create database driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", dbDriver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}

	if dirty {
		slog.Warn("[Migrations] Database is in dirty state - migration was interrupted",
			"set", set.Name,
			"version", version,
			"action", "attempting automatic recovery",
		)

		// Single baseline migration per set allows safe force-to-current-version recovery.
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to recover dirty migration state at version %d: %w", version, err)
		}
		slog.Info("[Migrations] Recovered dirty migration state", "set", set.Name, "version", version)
	}

	if !autoMigrate {
		slog.Info("[Migrations] Auto-migration disabled, skipping migrations",
			"set", set.Name,
			"current_version", version,
			"dirty", dirty,
		)
		return nil
	}

	slog.Info("[Migrations] Running database migrations", "set", set.Name, "current_version", version)

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("[Migrations] Database schema is up to date", "set", set.Name, "version", version)
			return nil
		}
		return fmt.Errorf("failed to run %s migrations: %w", set.Name, err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get updated migration version: %w", err)
	}

	slog.Info("[Migrations] Database migrations completed successfully",
		"set", set.Name,
		"from_version", version,
		"to_version", newVersion,
	)

	return nil
}
