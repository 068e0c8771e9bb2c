package testutils

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/phrazzld/userdir-api/internal/config"
	"github.com/phrazzld/userdir-api/internal/platform/database"
	"github.com/stretchr/testify/require"
)

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewTestDB opens a private in-memory SQLite database with all migrations
// applied. The database is closed when the test completes.
func NewTestDB(t *testing.T) *database.DB {
	t.Helper()

	return openAndMigrate(t, config.DatabaseConfig{
		Driver:  config.DriverSQLite,
		DSN:     ":memory:",
		Migrate: true,
	})
}

// NewPostgresTestDB connects to the PostgreSQL server named by
// USERDIR_TEST_DATABASE_URL, applies migrations, and empties USERS.
// The test is skipped when the variable is unset.
func NewPostgresTestDB(t *testing.T) *database.DB {
	t.Helper()

	if !IsIntegrationTestEnvironment() {
		t.Skip("Skipping integration test - requires " + TestDatabaseURLEnv + " environment variable")
	}

	db := openAndMigrate(t, config.DatabaseConfig{
		Driver:  config.DriverPostgres,
		DSN:     GetTestDatabaseURL(),
		Migrate: true,
	})
	_, err := db.ExecContext(context.Background(), db.Dialect.DeleteAll)
	require.NoError(t, err, "failed to empty USERS")

	return db
}

func openAndMigrate(t *testing.T, cfg config.DatabaseConfig) *database.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Open(ctx, cfg, DiscardLogger())
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { AssertCloseNoError(t, db) })

	_, err = database.Migrate(ctx, db, DiscardLogger())
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// WithTx runs fn inside a transaction that is rolled back afterwards, so
// nothing fn writes outlives the call.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err, "failed to begin transaction")

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Errorf("failed to roll back test transaction: %v", err)
		}
	}()

	fn(t, tx)
}

// MustInsertUser inserts a row directly, bypassing the store, and returns its ID.
func MustInsertUser(ctx context.Context, t *testing.T, db *database.DB, username string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRowContext(ctx, db.Dialect.InsertUser, username).Scan(&id)
	require.NoError(t, err, "failed to insert user %q", username)

	return id
}

// CountUsers returns the number of rows in USERS.
func CountUsers(ctx context.Context, t *testing.T, db *database.DB) int {
	t.Helper()

	var count int
	err := db.QueryRowContext(ctx, db.Dialect.CountUsers).Scan(&count)
	require.NoError(t, err, "failed to count users")

	return count
}

// AssertCloseNoError closes c and reports any error on t.
func AssertCloseNoError(t *testing.T, c io.Closer) {
	t.Helper()
	if err := c.Close(); err != nil {
		t.Errorf("failed to close resource: %v", err)
	}
}
