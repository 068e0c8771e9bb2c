package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/userdir-api/internal/domain"
	"github.com/phrazzld/userdir-api/internal/store"
)

// UserService is the transactional user repository. Every method runs as
// exactly one database transaction.
type UserService interface {
	// Save inserts an unpersisted user and returns the row as stored,
	// including its generated ID.
	Save(ctx context.Context, user *domain.User) (*domain.User, error)

	// GetAll returns every stored user.
	GetAll(ctx context.Context) ([]*domain.User, error)

	// FindByID looks up a user by ID. The boolean is false when no row matches.
	FindByID(ctx context.Context, id int64) (*domain.User, bool, error)

	// GetByID is FindByID for callers that expect the user to exist.
	// A missing row yields a *domain.NotFoundError.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// DeleteAll removes every user. Deleting from an empty table succeeds.
	DeleteAll(ctx context.Context) error
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	logger    *slog.Logger
	db        *sql.DB
}

// NewUserService creates a new UserService
func NewUserService(userStore store.UserStore, db *sql.DB, logger *slog.Logger) UserService {
	if logger == nil {
		logger = slog.Default()
	}

	return &UserServiceImpl{
		userStore: userStore,
		db:        db,
		logger:    logger.With("component", "user_service"),
	}
}

// Save validates the user, then inserts it and re-reads the row by its
// generated key inside a single transaction.
func (s *UserServiceImpl) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := user.Validate(); err != nil {
		s.logger.Debug("rejected invalid user", "error", err)
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	if user.Persisted() {
		return nil, fmt.Errorf("failed to save user: %w: user #%d is already persisted",
			domain.ErrInvalidArgument, user.ID)
	}

	var saved *domain.User
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		id, err := txStore.Insert(ctx, user.Username)
		if err != nil {
			return err
		}

		saved, err = txStore.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to re-read user #%d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("failed to save user",
			"error", err,
			"username", user.Username)
		return nil, fmt.Errorf("%w: failed to save user: %w", domain.ErrPersistence, err)
	}

	s.logger.Info("user saved successfully in transaction",
		"user_id", saved.ID,
		"username", saved.Username)

	return saved, nil
}

// GetAll returns every stored user. An empty table yields an empty, non-nil slice.
func (s *UserServiceImpl) GetAll(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	err := store.RunInReadOnlyTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		users, err = s.userStore.WithTx(tx).List(ctx)
		return err
	})
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("%w: failed to list users: %w", domain.ErrPersistence, err)
	}
	if users == nil {
		users = []*domain.User{}
	}

	s.logger.Debug("listed users", "count", len(users))
	return users, nil
}

// FindByID looks up a user by ID inside a read-only transaction.
func (s *UserServiceImpl) FindByID(ctx context.Context, id int64) (*domain.User, bool, error) {
	var user *domain.User
	err := store.RunInReadOnlyTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		user, err = s.userStore.WithTx(tx).FindByID(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found", "user_id", id)
			return nil, false, nil
		}
		s.logger.Error("failed to retrieve user",
			"error", err,
			"user_id", id)
		return nil, false, fmt.Errorf("%w: failed to retrieve user: %w", domain.ErrPersistence, err)
	}

	s.logger.Debug("retrieved user successfully", "user_id", id)
	return user, true, nil
}

// GetByID returns the user with the given ID or a *domain.NotFoundError.
func (s *UserServiceImpl) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, found, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &domain.NotFoundError{ID: id}
	}
	return user, nil
}

// DeleteAll removes every user in one transaction.
func (s *UserServiceImpl) DeleteAll(ctx context.Context) error {
	var deleted int64
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		deleted, err = s.userStore.WithTx(tx).DeleteAll(ctx)
		return err
	})
	if err != nil {
		s.logger.Error("failed to delete users", "error", err)
		return fmt.Errorf("%w: failed to delete users: %w", domain.ErrPersistence, err)
	}

	s.logger.Info("deleted all users", "deleted", deleted)
	return nil
}
