package database

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/userdir-api/internal/domain"
	"github.com/phrazzld/userdir-api/internal/platform/logger"
	"github.com/phrazzld/userdir-api/internal/store"
)

const userEntity = "user"

// SQLUserStore implements the store.UserStore interface on top of database/sql.
// The SQL text comes from its Dialect, so one implementation serves every engine.
type SQLUserStore struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

// NewSQLUserStore creates a new SQL implementation of the UserStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewSQLUserStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *SQLUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &SQLUserStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "user_store")),
	}
}

// Ensure SQLUserStore implements store.UserStore interface
var _ store.UserStore = (*SQLUserStore)(nil)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser maps one USERS row onto a domain.User.
func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username); err != nil {
		return nil, err
	}
	return &u, nil
}

// Insert implements store.UserStore.Insert.
// The generated key is read back from the same statement via RETURNING.
func (s *SQLUserStore) Insert(ctx context.Context, username string) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var id int64
	if err := s.db.QueryRowContext(ctx, s.dialect.InsertUser, username).Scan(&id); err != nil {
		log.Error("failed to insert user", slog.String("error", err.Error()))
		return 0, store.NewStoreError(userEntity, "insert", "failed to insert user", MapError(err))
	}

	log.Debug("user row inserted", slog.Int64("user_id", id))
	return id, nil
}

// FindByID implements store.UserStore.FindByID.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *SQLUserStore) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := scanUser(s.db.QueryRowContext(ctx, s.dialect.SelectByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.Int64("user_id", id))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, store.NewStoreError(userEntity, "find", "failed to query user", MapError(err))
	}

	return user, nil
}

// List implements store.UserStore.List.
func (s *SQLUserStore) List(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, s.dialect.SelectAll)
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		return nil, store.NewStoreError(userEntity, "list", "failed to query users", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, store.NewStoreError(userEntity, "list", "failed to scan user", MapError(err))
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError(userEntity, "list", "failed to iterate users", MapError(err))
	}

	log.Debug("users listed", slog.Int("count", len(users)))
	return users, nil
}

// DeleteAll implements store.UserStore.DeleteAll.
func (s *SQLUserStore) DeleteAll(ctx context.Context) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, s.dialect.DeleteAll)
	if err != nil {
		log.Error("failed to delete users", slog.String("error", err.Error()))
		return 0, store.NewStoreError(userEntity, "delete", "failed to delete users", MapError(err))
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, store.NewStoreError(userEntity, "delete", "failed to get rows affected", err)
	}

	return deleted, nil
}

// WithTx implements store.UserStore.WithTx.
// It returns a new SQLUserStore instance that uses the provided transaction.
func (s *SQLUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &SQLUserStore{
		db:      tx,
		dialect: s.dialect,
		logger:  s.logger,
	}
}
