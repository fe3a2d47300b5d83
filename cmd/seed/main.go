package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"flightly/internal/aircraft"
	"flightly/internal/crew"
	"flightly/internal/datetime"
	"flightly/internal/flights"
	"flightly/internal/payments"
	"flightly/internal/reservations"
	"flightly/internal/shared/config"
	"flightly/internal/shared/storage"
	"flightly/internal/users"
	"flightly/pkg/logger"
)

// Seeder populates the data directory with a usable sample dataset:
// one user per role, a couple of aircraft and crews, scheduled flights
// and a confirmed booking.
type Seeder struct {
	users        users.Service
	aircraft     aircraft.Service
	crew         crew.Service
	flights      flights.Service
	reservations reservations.Service
	payments     payments.Service
}

func main() {
	fmt.Println("Starting Flightly data seeder...")

	_ = godotenv.Load()
	cfg := config.Load()
	appLogger := logger.GetDefault()

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "./data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	store, err := storage.Open(dataDir)
	if err != nil {
		log.Fatalf("Failed to open data store: %v", err)
	}

	userRepo := users.NewRepository(store)
	aircraftRepo := aircraft.NewRepository(store)
	crewRepo := crew.NewRepository(store)
	flightRepo := flights.NewRepository(store, aircraftRepo, crewRepo)
	paymentRepo := payments.NewRepository(store, userRepo)
	reservationRepo := reservations.NewRepository(store, flightRepo, userRepo, paymentRepo)

	seeder := &Seeder{
		users:        users.NewService(userRepo, cfg.BcryptCost, appLogger),
		aircraft:     aircraft.NewService(aircraftRepo),
		crew:         crew.NewService(crewRepo),
		flights:      flights.NewService(flightRepo, aircraftRepo, crewRepo),
		payments:     payments.NewService(paymentRepo, userRepo, appLogger),
		reservations: reservations.NewService(reservationRepo, flightRepo, userRepo, paymentRepo, appLogger),
	}

	ctx := context.Background()
	if err := seeder.SeedAll(ctx); err != nil {
		log.Fatalf("Failed to seed data: %v", err)
	}

	flushes := []struct {
		name  string
		flush func(context.Context) error
	}{
		{"users", userRepo.Flush},
		{"aircrafts", aircraftRepo.Flush},
		{"crew members", crewRepo.Flush},
		{"flights", flightRepo.Flush},
		{"payments", paymentRepo.Flush},
		{"reservations", reservationRepo.Flush},
	}
	for _, f := range flushes {
		if err := f.flush(ctx); err != nil {
			log.Fatalf("Failed to write %s: %v", f.name, err)
		}
	}

	fmt.Printf("Seeding completed! Data written to %s\n", dataDir)
	fmt.Println("Login with admin/admin123, manager/manager123 or alice/alice123.")
}

func (s *Seeder) SeedAll(ctx context.Context) error {
	fmt.Println("  Seeding users...")
	if _, err := s.users.Create(ctx, users.CreateParams{Username: "admin", Password: "admin123", Role: users.RoleAdmin}); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	if _, err := s.users.Create(ctx, users.CreateParams{Username: "manager", Password: "manager123", Role: users.RoleBookingManager}); err != nil {
		return fmt.Errorf("failed to seed booking manager: %w", err)
	}
	alice, err := s.users.Create(ctx, users.CreateParams{Username: "alice", Password: "alice123", Role: users.RolePassenger, LoyaltyPoints: 25})
	if err != nil {
		return fmt.Errorf("failed to seed passenger: %w", err)
	}
	if _, err := s.users.Create(ctx, users.CreateParams{Username: "bob", Password: "bob12345", Role: users.RolePassenger}); err != nil {
		return fmt.Errorf("failed to seed passenger: %w", err)
	}

	fmt.Println("  Seeding aircraft...")
	a320, err := s.aircraft.Create(ctx, aircraft.CreateParams{Model: "Airbus A320", Capacity: 180, SeatsPerRow: 6})
	if err != nil {
		return fmt.Errorf("failed to seed aircraft: %w", err)
	}
	e190, err := s.aircraft.Create(ctx, aircraft.CreateParams{Model: "Embraer E190", Capacity: 100, SeatsPerRow: 4})
	if err != nil {
		return fmt.Errorf("failed to seed aircraft: %w", err)
	}

	fmt.Println("  Seeding crew members...")
	pilot, err := s.crew.Create(ctx, "Dana Reeves", crew.RolePilot)
	if err != nil {
		return fmt.Errorf("failed to seed crew: %w", err)
	}
	attendant, err := s.crew.Create(ctx, "Sam Ortiz", crew.RoleFlightAttendant)
	if err != nil {
		return fmt.Errorf("failed to seed crew: %w", err)
	}

	fmt.Println("  Seeding flights...")
	dep, _ := datetime.Parse("2026-10-01 08:30")
	arr, _ := datetime.Parse("2026-10-01 11:45")
	outbound, err := s.flights.Create(ctx, flights.CreateParams{
		Origin:      "Vienna",
		Destination: "Lisbon",
		Departure:   dep,
		Arrival:     arr,
		AircraftID:  a320.ID,
		CrewIDs:     []crew.ID{pilot.ID, attendant.ID},
	})
	if err != nil {
		return fmt.Errorf("failed to seed flight: %w", err)
	}
	dep2, _ := datetime.Parse("2026-10-05 14:00")
	arr2, _ := datetime.Parse("2026-10-05 17:10")
	if _, err := s.flights.Create(ctx, flights.CreateParams{
		Origin:      "Lisbon",
		Destination: "Vienna",
		Departure:   dep2,
		Arrival:     arr2,
		AircraftID:  e190.ID,
	}); err != nil {
		return fmt.Errorf("failed to seed flight: %w", err)
	}

	fmt.Println("  Seeding a sample booking...")
	res, err := s.reservations.Create(ctx, outbound.ID, "3A", alice.ID, payments.MethodCash, payments.Details{})
	if err != nil {
		return fmt.Errorf("failed to seed reservation: %w", err)
	}
	if _, err := s.payments.Process(ctx, res.PaymentID); err != nil {
		return fmt.Errorf("failed to settle seeded payment: %w", err)
	}
	return nil
}
