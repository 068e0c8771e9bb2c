package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/userdir-api/internal/config"
	"github.com/phrazzld/userdir-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError_Generic(t *testing.T) {
	assert.NoError(t, MapError(nil))
	assert.ErrorIs(t, MapError(sql.ErrNoRows), store.ErrNotFound)

	other := errors.New("connection reset")
	assert.Equal(t, other, MapError(other))
}

func TestMapError_Postgres(t *testing.T) {
	testCases := []struct {
		code string
		want error
	}{
		{pgUniqueViolationCode, store.ErrDuplicate},
		{pgNotNullViolationCode, store.ErrInvalidEntity},
		{pgCheckViolationCode, store.ErrInvalidEntity},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: tc.code, ColumnName: "username"}
			err := MapError(pgErr)

			assert.ErrorIs(t, err, tc.want)
			var unwrapped *pgconn.PgError
			assert.ErrorAs(t, err, &unwrapped, "driver error must stay reachable")
		})
	}

	t.Run("unmapped code", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "57P01"}
		assert.Equal(t, error(pgErr), MapError(pgErr))
	})
}

func TestMapError_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, config.DatabaseConfig{Driver: config.DriverSQLite, DSN: ":memory:"}, nil)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.ExecContext(ctx, `CREATE TABLE T (ID INTEGER PRIMARY KEY, NAME TEXT NOT NULL UNIQUE)`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO T (ID, NAME) VALUES (1, 'a')`)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO T (ID, NAME) VALUES (2, NULL)`)
	assert.ErrorIs(t, MapError(err), store.ErrInvalidEntity)

	_, err = db.ExecContext(ctx, `INSERT INTO T (ID, NAME) VALUES (3, 'a')`)
	assert.ErrorIs(t, MapError(err), store.ErrDuplicate)

	_, err = db.ExecContext(ctx, `INSERT INTO T (ID, NAME) VALUES (1, 'b')`)
	assert.ErrorIs(t, MapError(err), store.ErrDuplicate)

	_, err = db.ExecContext(ctx, `SELECT * FROM MISSING`)
	require.Error(t, err)
	mapped := MapError(err)
	assert.NotErrorIs(t, mapped, store.ErrInvalidEntity)
	assert.NotErrorIs(t, mapped, store.ErrDuplicate)
}

func TestScanUser(t *testing.T) {
	row := fakeRow{id: 9, username: "nine"}

	user, err := scanUser(row)

	require.NoError(t, err)
	assert.Equal(t, int64(9), user.ID)
	assert.Equal(t, "nine", user.Username)

	_, err = scanUser(fakeRow{err: sql.ErrNoRows})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

type fakeRow struct {
	id       int64
	username string
	err      error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int64) = r.id
	*dest[1].(*string) = r.username
	return nil
}
