package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/phrazzld/userdir-api/internal/seed"
	"golang.org/x/sync/errgroup"
)

const readHeaderTimeout = 5 * time.Second

// Run listens on the configured port and serves until ctx is canceled or
// the seed run fails.
func (app *application) Run(ctx context.Context, startedAt time.Time) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", app.config.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", app.config.Server.Port, err)
	}

	return app.serve(ctx, ln, startedAt)
}

// serve runs the HTTP server on ln and, when enabled, the seed runner
// alongside it. A seed failure shuts the server down and is returned.
func (app *application) serve(ctx context.Context, ln net.Listener, startedAt time.Time) error {
	server := &http.Server{
		Handler:           app.setupRouter(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Info("Starting server", "addr", ln.Addr().String())
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if app.config.Seed.Enabled {
			if err := seed.NewRunner(app.userService, app.logger).Run(gctx); err != nil {
				return fmt.Errorf("startup seeding failed: %w", err)
			}
		}
		app.logger.Info("startup time", "duration", time.Since(startedAt))
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		app.logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.Server.ShutdownTimeout())
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		app.logger.Info("Server shutdown completed")
		return nil
	})

	return g.Wait()
}
