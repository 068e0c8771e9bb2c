package database

import (
	"fmt"

	"github.com/phrazzld/userdir-api/internal/config"
	"github.com/pressly/goose/v3"
)

// Dialect holds the engine-specific SQL used by the user store and the
// settings needed to migrate that engine.
type Dialect struct {
	// Name is the database/sql driver name.
	Name string
	// Goose is the goose dialect used for migrations.
	Goose goose.Dialect
	// MigrationsDir is the directory under migrations/ holding the engine's scripts.
	MigrationsDir string

	InsertUser string
	SelectByID string
	SelectAll  string
	DeleteAll  string
	CountUsers string
}

// SQLiteDialect targets the embedded modernc.org/sqlite engine.
var SQLiteDialect = Dialect{
	Name:          config.DriverSQLite,
	Goose:         goose.DialectSQLite3,
	MigrationsDir: "sqlite",

	InsertUser: `INSERT INTO USERS (USERNAME) VALUES (?) RETURNING ID`,
	SelectByID: `SELECT ID, USERNAME FROM USERS WHERE ID = ?`,
	SelectAll:  `SELECT ID, USERNAME FROM USERS ORDER BY ID`,
	DeleteAll:  `DELETE FROM USERS`,
	CountUsers: `SELECT COUNT(*) FROM USERS`,
}

// PostgresDialect targets PostgreSQL through the pgx stdlib driver.
var PostgresDialect = Dialect{
	Name:          config.DriverPostgres,
	Goose:         goose.DialectPostgres,
	MigrationsDir: "postgres",

	InsertUser: `INSERT INTO USERS (USERNAME) VALUES ($1) RETURNING ID`,
	SelectByID: `SELECT ID, USERNAME FROM USERS WHERE ID = $1`,
	SelectAll:  `SELECT ID, USERNAME FROM USERS ORDER BY ID`,
	DeleteAll:  `DELETE FROM USERS`,
	CountUsers: `SELECT COUNT(*) FROM USERS`,
}

// DialectFor returns the Dialect registered for the given driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case config.DriverSQLite:
		return SQLiteDialect, nil
	case config.DriverPostgres:
		return PostgresDialect, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}
