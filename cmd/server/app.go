package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/userdir-api/internal/config"
	"github.com/phrazzld/userdir-api/internal/platform/database"
	"github.com/phrazzld/userdir-api/internal/service"
	"github.com/phrazzld/userdir-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *database.DB

	userStore   store.UserStore
	userService service.UserService
}

// newApplication opens the database, provisions the schema when configured
// to, and wires the store and service layers.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := database.Open(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.Database.Migrate {
		if _, err := database.Migrate(ctx, db, logger); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	return newApplicationWithDB(cfg, logger, db), nil
}

// newApplicationWithDB wires the store and service layers over an open database.
func newApplicationWithDB(cfg *config.Config, logger *slog.Logger, db *database.DB) *application {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.userStore = database.NewSQLUserStore(db.DB, db.Dialect, logger)
	app.userService = service.NewUserService(app.userStore, db.DB, logger)

	logger.Info("Application initialized successfully")
	return app
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
