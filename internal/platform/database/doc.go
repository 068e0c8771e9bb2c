// Package database provides the relational store behind the user directory.
// It opens either the embedded SQLite engine (modernc.org/sqlite) or an
// external PostgreSQL server (pgx), provisions the schema from embedded goose
// migrations, and implements store.UserStore on top of database/sql. It also
// maps driver-specific errors onto the store package's error taxonomy.
package database
