package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/msomdec/user-admin/internal/handler"
	"github.com/msomdec/user-admin/internal/repository/sqlite"
	"github.com/msomdec/user-admin/internal/service"
	"github.com/msomdec/user-admin/internal/token"
)

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := migrate(cmd.Context(), db); err != nil {
		return err
	}

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	authService := service.NewAuthService(db.Users(), token.NewService(cfg.JWTSecret), hasher)
	userService := service.NewUserService(db.Users(), hasher)

	if cfg.SeedDefaultUsers {
		if err := userService.SeedDefaults(cmd.Context()); err != nil {
			return fmt.Errorf("failed to seed default users: %w", err)
		}
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, authService, userService)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.CORS(cfg.AllowedOrigins, handler.SecurityHeaders(handler.RequestLogger(mux))),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}
