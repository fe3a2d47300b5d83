package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"flightly/internal/aircraft"
	"flightly/internal/cli"
	"flightly/internal/crew"
	"flightly/internal/flights"
	"flightly/internal/payments"
	"flightly/internal/reservations"
	"flightly/internal/shared/config"
	"flightly/internal/shared/storage"
	"flightly/internal/users"
	"flightly/pkg/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// repositories groups every store-backed repository so the load and
// flush sequences stay in one place.
type repositories struct {
	users        users.Repository
	aircraft     aircraft.Repository
	crew         crew.Repository
	flights      flights.Repository
	payments     payments.Repository
	reservations reservations.Repository
}

// loadAll reads every JSON file in dependency order: flights validate
// their aircraft and crew, reservations validate flights, passengers
// and payments, and re-occupy their seats.
func (r *repositories) loadAll(ctx context.Context) error {
	if err := r.users.Load(ctx); err != nil {
		return err
	}
	if err := r.aircraft.Load(ctx); err != nil {
		return err
	}
	if err := r.crew.Load(ctx); err != nil {
		return err
	}
	if err := r.flights.Load(ctx); err != nil {
		return err
	}
	if err := r.payments.Load(ctx); err != nil {
		return err
	}
	return r.reservations.Load(ctx)
}

func (r *repositories) flushAll(ctx context.Context) error {
	for _, flush := range []func(context.Context) error{
		r.users.Flush,
		r.aircraft.Flush,
		r.crew.Flush,
		r.flights.Flush,
		r.payments.Flush,
		r.reservations.Flush,
	} {
		if err := flush(ctx); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	appLogger := logger.GetDefault()

	if err := godotenv.Load(); err != nil {
		appLogger.Info("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		appLogger.Error("failed to locate data directory", slog.Any("error", err))
		os.Exit(1)
	}
	store, err := storage.Open(dataDir)
	if err != nil {
		appLogger.Error("failed to open data store", slog.Any("error", err))
		os.Exit(1)
	}
	appLogger.Info("data store opened", slog.String("dir", dataDir))

	repos := &repositories{}
	repos.users = users.NewRepository(store)
	repos.aircraft = aircraft.NewRepository(store)
	repos.crew = crew.NewRepository(store)
	repos.flights = flights.NewRepository(store, repos.aircraft, repos.crew)
	repos.payments = payments.NewRepository(store, repos.users)
	repos.reservations = reservations.NewRepository(store, repos.flights, repos.users, repos.payments)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := repos.loadAll(ctx); err != nil {
		appLogger.Error("failed to load data files", slog.Any("error", err))
		os.Exit(1)
	}

	svc := cli.Services{
		Users:        users.NewService(repos.users, cfg.BcryptCost, appLogger),
		Aircraft:     aircraft.NewService(repos.aircraft),
		Crew:         crew.NewService(repos.crew),
		Flights:      flights.NewService(repos.flights, repos.aircraft, repos.crew),
		Payments:     payments.NewService(repos.payments, repos.users, appLogger),
		Reservations: reservations.NewService(repos.reservations, repos.flights, repos.users, repos.payments, appLogger),
	}

	app := cli.NewApp(svc, os.Stdin, os.Stdout, appLogger)

	done := make(chan error, 1)
	go func() {
		done <- app.Run(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-done:
		if err != nil {
			appLogger.Error("interface error", slog.Any("error", err))
		}
	case sig := <-quit:
		appLogger.Info("signal received, shutting down", slog.String("signal", sig.String()))
		cancel()
	}

	if err := repos.flushAll(context.Background()); err != nil {
		appLogger.Error("failed to flush data files", slog.Any("error", err))
		os.Exit(1)
	}
	appLogger.Info("data files flushed, goodbye")
}
