// Package testutils provides testing utilities with a focus on database testing.
//
// NewTestDB gives every test its own private in-memory SQLite store with the
// schema already applied, so tests can run in parallel without sharing rows.
// WithTx runs a test body inside a transaction that is always rolled back.
// Tests that need a real PostgreSQL server use NewPostgresTestDB, which skips
// when USERDIR_TEST_DATABASE_URL is unset.
package testutils
