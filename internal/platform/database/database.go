package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "modernc.org/sqlite"             // registers the "sqlite" driver

	"github.com/phrazzld/userdir-api/internal/config"
)

const (
	pingTimeout = 5 * time.Second

	// sqliteBusyTimeoutMillis bounds how long SQLite waits on a locked file.
	sqliteBusyTimeoutMillis = 5000
)

// DB is a database handle paired with the SQL dialect of its engine.
type DB struct {
	*sql.DB
	Dialect Dialect
}

// Open establishes a connection to the configured store, configures the
// connection pool and verifies the connection with a ping.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(dialect.Name, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	configurePool(db, dialect)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if dialect.Name == config.DriverSQLite {
		pragma := fmt.Sprintf("PRAGMA busy_timeout = %d", sqliteBusyTimeoutMillis)
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set busy timeout: %w", err)
		}
	}

	logger.Info("Database connection established",
		slog.String("driver", dialect.Name))

	return &DB{DB: db, Dialect: dialect}, nil
}

// configurePool applies engine-appropriate pool settings.
func configurePool(db *sql.DB, dialect Dialect) {
	switch dialect.Name {
	case config.DriverSQLite:
		// An in-memory database lives and dies with its connection, so there
		// is exactly one and it is never recycled. Transactions queue on it.
		// If database/sql discards it (driver.ErrBadConn) the replacement
		// opens a fresh, empty database without USERS. Use a file DSN when
		// data must survive a broken connection.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		db.SetConnMaxIdleTime(0)
	default:
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}
}
