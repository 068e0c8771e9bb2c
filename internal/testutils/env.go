package testutils

import "os"

// TestDatabaseURLEnv names the environment variable holding the PostgreSQL
// connection string used by integration tests.
const TestDatabaseURLEnv = "USERDIR_TEST_DATABASE_URL"

// GetTestDatabaseURL returns the integration database URL, or "" if unset.
func GetTestDatabaseURL() string {
	return os.Getenv(TestDatabaseURLEnv)
}

// IsIntegrationTestEnvironment reports whether a PostgreSQL test database is configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}
