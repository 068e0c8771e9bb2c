package redact

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		contains string
		hidden   string
	}{
		{
			name:     "url dsn",
			input:    "failed to connect to postgres://app:hunter22@db/users",
			contains: RedactedCredentialPlaceholder,
			hidden:   "hunter22",
		},
		{
			name:     "keyword dsn",
			input:    "cannot open host=db user=app password=hunter22 dbname=users",
			contains: RedactedCredentialPlaceholder,
			hidden:   "hunter22",
		},
		{
			name:     "sql statement",
			input:    "exec failed: INSERT INTO USERS (USERNAME) VALUES (?) RETURNING ID",
			contains: RedactedSQLPlaceholder,
			hidden:   "USERNAME",
		},
		{
			name:     "unix path",
			input:    "unable to open database file /var/lib/userdir/users.db",
			contains: RedactedPathPlaceholder,
			hidden:   "/var/lib",
		},
		{
			name:     "windows path",
			input:    `unable to open C:\data\userdir\users.db`,
			contains: RedactedPathPlaceholder,
			hidden:   `userdir\users.db`,
		},
		{
			name:     "host and port",
			input:    "dial tcp db.internal.example.com:5432: connection refused",
			contains: RedactedHostPlaceholder,
			hidden:   "example.com",
		},
		{
			name:     "ip and port",
			input:    "dial tcp 10.0.0.12:5432: i/o timeout",
			contains: RedactedHostPlaceholder,
			hidden:   "10.0.0.12",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := String(tc.input)
			assert.Contains(t, got, tc.contains)
			assert.NotContains(t, got, tc.hidden)
		})
	}
}

func TestString_Untouched(t *testing.T) {
	for _, s := range []string{"", "user not found", "persistence failure: database is closed"} {
		assert.Equal(t, s, String(s))
	}
}

func TestError(t *testing.T) {
	assert.Empty(t, Error(nil))

	err := fmt.Errorf("open store: %w", errors.New("postgres://app:secret@db:5432/users"))
	got := Error(err)
	assert.NotContains(t, got, "secret")
	assert.Contains(t, got, "open store")
}
