// Package seed populates the user directory with its initial users and
// verifies them through the service layer.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/userdir-api/internal/domain"
	"github.com/phrazzld/userdir-api/internal/service"
)

// DefaultUsernames are the users created at startup.
var DefaultUsernames = []string{"A", "B", "C"}

// Runner saves a fixed list of users, then reads them back.
type Runner struct {
	svc       service.UserService
	logger    *slog.Logger
	usernames []string
}

// NewRunner creates a Runner for the given usernames, or DefaultUsernames
// when none are given.
func NewRunner(svc service.UserService, logger *slog.Logger, usernames ...string) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if len(usernames) == 0 {
		usernames = DefaultUsernames
	}

	return &Runner{
		svc:       svc,
		logger:    logger.With("component", "seed_runner"),
		usernames: append([]string(nil), usernames...),
	}
}

// Run saves every username in order, lists all users, and fetches each
// listed user by ID. It stops at the first error.
func (r *Runner) Run(ctx context.Context) error {
	start := time.Now()

	for _, name := range r.usernames {
		user, err := domain.NewUser(name)
		if err != nil {
			return fmt.Errorf("seed: build user %q: %w", name, err)
		}

		saved, err := r.svc.Save(ctx, user)
		if err != nil {
			return fmt.Errorf("seed: save user %q: %w", name, err)
		}
		r.logger.Info("seeded user",
			"user_id", saved.ID,
			"username", saved.Username)
	}

	users, err := r.svc.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("seed: list users: %w", err)
	}

	for _, u := range users {
		user, err := r.svc.GetByID(ctx, u.ID)
		if err != nil {
			return fmt.Errorf("seed: verify user #%d: %w", u.ID, err)
		}
		r.logger.Debug("verified user",
			"user_id", user.ID,
			"username", user.Username)
	}

	r.logger.Info("seeding complete",
		"seeded", len(r.usernames),
		"verified", len(users),
		"duration", time.Since(start))

	return nil
}
