package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// User is a directory entry. It is treated as an immutable value: the store
// assigns ID on insert and nothing updates a row afterwards.
//
// A zero ID means the user has not been persisted yet; stores hand out
// identifiers starting at 1.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username" validate:"required"`
}

// NewUser creates an unpersisted User with the given username.
// Returns an error wrapping ErrInvalidArgument if the username is empty.
func NewUser(username string) (*User, error) {
	user := &User{Username: username}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the User's fields against their constraints.
func (u *User) Validate() error {
	if u == nil {
		return fmt.Errorf("%w: user is nil", ErrInvalidArgument)
	}
	if err := validate.Struct(u); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return nil
}

// Persisted reports whether the store has assigned an identifier.
func (u *User) Persisted() bool {
	return u != nil && u.ID != 0
}
