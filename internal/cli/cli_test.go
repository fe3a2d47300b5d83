package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"flightly/internal/aircraft"
	"flightly/internal/crew"
	"flightly/internal/flights"
	"flightly/internal/payments"
	"flightly/internal/reservations"
	"flightly/internal/shared/storage"
	"flightly/internal/users"
	"flightly/pkg/logger"
)

func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer, Services) {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)

	log := logger.GetDefault()
	userRepo := users.NewRepository(store)
	aircraftRepo := aircraft.NewRepository(store)
	crewRepo := crew.NewRepository(store)
	flightRepo := flights.NewRepository(store, aircraftRepo, crewRepo)
	paymentRepo := payments.NewRepository(store, userRepo)
	resRepo := reservations.NewRepository(store, flightRepo, userRepo, paymentRepo)

	svc := Services{
		Users:        users.NewService(userRepo, bcrypt.MinCost, log),
		Aircraft:     aircraft.NewService(aircraftRepo),
		Crew:         crew.NewService(crewRepo),
		Flights:      flights.NewService(flightRepo, aircraftRepo, crewRepo),
		Payments:     payments.NewService(paymentRepo, userRepo, log),
		Reservations: reservations.NewService(resRepo, flightRepo, userRepo, paymentRepo, log),
	}

	var out bytes.Buffer
	return NewApp(svc, strings.NewReader(input), &out, log), &out, svc
}

func TestRunExitsOnChoice(t *testing.T) {
	app, out, _ := newTestApp(t, "2\n")
	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "Welcome to the Airline Management System")
	assert.Contains(t, out.String(), "Exiting the program. Goodbye!")
}

func TestRunRejectsBadCredentials(t *testing.T) {
	app, out, _ := newTestApp(t, "1\nghost\nwrong\n2\n")
	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "Login failed. Please try again.")
}

func TestAdminAddsAircraft(t *testing.T) {
	input := strings.Join([]string{
		"1",          // login
		"root",       // username
		"secret1",    // password
		"2",          // manage aircrafts
		"1",          // add aircraft
		"Boeing 737", // model
		"120",        // capacity
		"6",          // seats per row
		"5",          // back
		"4",          // logout
		"2",          // exit
	}, "\n") + "\n"

	app, out, svc := newTestApp(t, input)
	_, err := svc.Users.Create(context.Background(), users.CreateParams{
		Username: "root", Password: "secret1", Role: users.RoleAdmin,
	})
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "Redirecting to Admin Interface...")
	assert.Contains(t, out.String(), "Aircraft added successfully!")
	assert.Len(t, svc.Aircraft.List(context.Background()), 1)
}

func TestNumericPromptStopsWhenInputRunsOut(t *testing.T) {
	input := strings.Join([]string{
		"1",          // login
		"root",       // username
		"secret1",    // password
		"2",          // manage aircrafts
		"1",          // add aircraft
		"Boeing 737", // model, then input ends before capacity
	}, "\n") + "\n"

	app, out, svc := newTestApp(t, input)
	_, err := svc.Users.Create(context.Background(), users.CreateParams{
		Username: "root", Password: "secret1", Role: users.RoleAdmin,
	})
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "Maximum attempts reached. Aborting.")
	assert.Empty(t, svc.Aircraft.List(context.Background()))
}

func TestPassengerViewsReservations(t *testing.T) {
	input := strings.Join([]string{
		"1",       // login
		"alice",   // username
		"secret1", // password
		"2",       // view reservations
		"3",       // logout
		"2",       // exit
	}, "\n") + "\n"

	app, out, svc := newTestApp(t, input)
	_, err := svc.Users.Create(context.Background(), users.CreateParams{
		Username: "alice", Password: "secret1", Role: users.RolePassenger,
	})
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "Redirecting to Passenger Interface...")
	assert.Contains(t, out.String(), "No reservations found.")
}
