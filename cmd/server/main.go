package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/auth"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/config"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/database"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/handlers"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/logger"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/normalize"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/providers"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/router"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (defaults to CONFIG_FILE or configs/server.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to create database pool: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("connected to database")

	repo := database.NewRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	// Upstream providers
	timeout := providers.WithTimeout(cfg.Upstream.Timeout.Std())
	flights := providers.NewFlightProvider(cfg.Upstream.FlightHost, cfg.Upstream.RapidAPIKey, timeout)
	stays := providers.NewAccommodationProvider(cfg.Upstream.AccommodationHost, cfg.Upstream.RapidAPIKey, timeout)
	places := providers.NewPlaceProvider(cfg.Upstream.EventsHost, cfg.Upstream.RapidAPIKey, timeout)

	// Services
	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL.Std())
	authService := service.NewAuthService(repo, auth.NewHasher(bcrypt.DefaultCost), tokens, log)
	tripService := service.NewTripService(repo, log)
	searchService := service.NewSearchService(flights, stays, places, normalize.New(log.With("component", "normalize")), log)

	h := handlers.NewHandler(authService, tripService, searchService, log.With("component", "http"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.NewRouter(h, tokens, log),
		ReadTimeout:  cfg.Server.ReadTimeout.Std(),
		WriteTimeout: cfg.Server.WriteTimeout.Std(),
		IdleTimeout:  cfg.Server.IdleTimeout.Std(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("API server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Std())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
