package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid username", func(t *testing.T) {
		user, err := NewUser("alice")

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Zero(t, user.ID, "new users must not carry an identifier")
		assert.False(t, user.Persisted())
	})

	t.Run("empty username", func(t *testing.T) {
		user, err := NewUser("")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name    string
		user    *User
		wantErr bool
	}{
		{name: "unpersisted", user: &User{Username: "A"}},
		{name: "persisted", user: &User{ID: 7, Username: "B"}},
		{name: "missing username", user: &User{ID: 7}, wantErr: true},
		{name: "nil user", user: nil, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.user.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUserPersisted(t *testing.T) {
	assert.True(t, (&User{ID: 1, Username: "A"}).Persisted())
	assert.False(t, (&User{Username: "A"}).Persisted())
	assert.False(t, (*User)(nil).Persisted())
}

func TestUserJSON(t *testing.T) {
	data, err := json.Marshal(&User{ID: 2, Username: "B"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"username":"B"}`, string(data))
}

func TestNotFoundError(t *testing.T) {
	var err error = &NotFoundError{ID: 42}

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrPersistence))
	assert.Contains(t, err.Error(), "42")

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, int64(42), nf.ID)
}
