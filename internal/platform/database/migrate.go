package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*/*.sql
var migrationsFS embed.FS

// Migrations returns the migration scripts for the given dialect.
func Migrations(dialect Dialect) (fs.FS, error) {
	fsys, err := fs.Sub(migrationsFS, "migrations/"+dialect.MigrationsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to locate %s migrations: %w", dialect.Name, err)
	}
	return fsys, nil
}

// Migrate applies all pending migrations for db's dialect.
// It returns the number of migrations applied.
func Migrate(ctx context.Context, db *DB, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.Default()
	}

	// Use a correlation ID for all migration logs to allow tracing the entire operation
	migrationLogger := logger.With(
		"correlation_id", uuid.New().String(),
		"component", "migrations",
		"dialect", string(db.Dialect.Goose),
	)

	fsys, err := Migrations(db.Dialect)
	if err != nil {
		return 0, err
	}

	provider, err := goose.NewProvider(db.Dialect.Goose, db.DB, fsys)
	if err != nil {
		return 0, fmt.Errorf("failed to create migration provider: %w", err)
	}

	startTime := time.Now()
	results, err := provider.Up(ctx)
	for _, r := range results {
		attrs := []any{
			"direction", r.Direction,
			"duration", r.Duration,
		}
		if r.Source != nil {
			attrs = append(attrs, "version", r.Source.Version, "path", r.Source.Path)
		}
		if r.Error != nil {
			migrationLogger.Error("migration failed", append(attrs, "error", r.Error)...)
			continue
		}
		migrationLogger.Info("migration applied", attrs...)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to apply migrations: %w", err)
	}

	migrationLogger.Info("Migrations complete",
		"applied", len(results),
		"duration", time.Since(startTime))

	return len(results), nil
}
