package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/userdir-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
// Implementations execute each call as a single statement against their DBTX;
// transaction boundaries are owned by the caller (see RunInTransaction).
type UserStore interface {
	// Insert adds a row with the given username and returns the identifier
	// the store generated for it.
	Insert(ctx context.Context, username string) (int64, error)

	// FindByID retrieves the user with the given identifier.
	// Returns ErrUserNotFound if no row matches.
	FindByID(ctx context.Context, id int64) (*domain.User, error)

	// List returns every user. It returns an empty slice for an empty table.
	List(ctx context.Context) ([]*domain.User, error)

	// DeleteAll removes every user and reports how many rows were removed.
	DeleteAll(ctx context.Context) (int64, error)

	// WithTx returns a new UserStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) UserStore
}
