package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finance-tracker/internal/auth"
	"finance-tracker/internal/config"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/storage"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.UsesDevSecret() {
		log.Println("WARNING: JWT_SECRET is not set, using the development secret")
	}

	db, err := storage.NewDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	authService := auth.NewService(db, cfg.Auth)

	if err := seedUser(ctx, db, authService, cfg.Seed); err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}

	h := handlers.NewHandlers(db, authService)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           setupRouter(h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server running on http://localhost:%s", cfg.Server.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setupRouter(h *handlers.Handlers) http.Handler {
	return h.Routes(
		chimw.RequestID,
		chimw.RealIP,
		chimw.Logger,
		chimw.Recoverer,
	)
}

// userCounter is satisfied by storage.DB.
type userCounter interface {
	UserCount(ctx context.Context) (int, error)
}

// seedUser creates the configured user when the database has no users yet.
func seedUser(ctx context.Context, db userCounter, svc *auth.Service, seed config.Seed) error {
	if !seed.Enabled() {
		return nil
	}

	count, err := db.UserCount(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	user, err := svc.Register(ctx, seed.Name, seed.Email, seed.Password)
	if err != nil {
		return err
	}
	log.Printf("Created seed user %s with ID %d", user.Email, user.ID)
	return nil
}
