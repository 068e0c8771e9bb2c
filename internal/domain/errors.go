// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Domain errors shared by every layer of the user directory.
var (
	// ErrInvalidArgument is returned when a caller violates an operation's
	// preconditions, e.g. saving a user without a username or with an ID
	// already assigned.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when no user matches the requested identifier.
	ErrNotFound = errors.New("user not found")

	// ErrPersistence is returned when the underlying store or transaction
	// fails for any reason (connectivity, constraint violation, I/O).
	ErrPersistence = errors.New("persistence failure")
)

// NotFoundError reports a lookup for an identifier with no matching row.
// It matches ErrNotFound with errors.Is.
type NotFoundError struct {
	ID int64
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("couldn't find user #%d", e.ID)
}

// Is makes errors.Is(err, ErrNotFound) hold for any *NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
