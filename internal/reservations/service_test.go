package reservations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"flightly/internal/aircraft"
	"flightly/internal/crew"
	"flightly/internal/datetime"
	"flightly/internal/flights"
	"flightly/internal/payments"
	"flightly/internal/shared/storage"
	"flightly/internal/users"
	"flightly/pkg/logger"
)

type testEnv struct {
	users        users.Service
	flights      flights.Repository
	payments     payments.Repository
	reservations Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)

	log := logger.GetDefault()
	userRepo := users.NewRepository(store)
	aircraftRepo := aircraft.NewRepository(store)
	crewRepo := crew.NewRepository(store)
	flightRepo := flights.NewRepository(store, aircraftRepo, crewRepo)
	paymentRepo := payments.NewRepository(store, userRepo)
	resRepo := NewRepository(store, flightRepo, userRepo, paymentRepo)

	return &testEnv{
		users:        users.NewService(userRepo, bcrypt.MinCost, log),
		flights:      flightRepo,
		payments:     paymentRepo,
		reservations: NewService(resRepo, flightRepo, userRepo, paymentRepo, log),
	}
}

func (e *testEnv) addPassenger(t *testing.T, username string, points float64) *users.User {
	t.Helper()
	u, err := e.users.Create(context.Background(), users.CreateParams{
		Username:      username,
		Password:      "secret1",
		Role:          users.RolePassenger,
		LoyaltyPoints: points,
	})
	require.NoError(t, err)
	return u
}

func (e *testEnv) addFlight(t *testing.T) *flights.Flight {
	t.Helper()
	a, err := aircraft.New("Airbus A320", 120, 6)
	require.NoError(t, err)
	dep, _ := datetime.Parse("2026-10-01 08:30")
	arr, _ := datetime.Parse("2026-10-01 11:45")
	f, err := flights.New("Vienna", "Lisbon", dep, arr, a, nil)
	require.NoError(t, err)
	require.NoError(t, e.flights.Create(context.Background(), f))
	return f
}

func TestBookSeat(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	passenger := env.addPassenger(t, "alice", 0)
	flight := env.addFlight(t)

	res, err := env.reservations.Create(ctx, flight.ID, "20B", passenger.ID, payments.MethodCash, payments.Details{})
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, res.Status)
	assert.Equal(t, "20B", res.Seat)

	occupied, err := flight.SeatStatus("20B")
	require.NoError(t, err)
	assert.True(t, occupied)

	p, err := env.payments.FindByID(ctx, res.PaymentID)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, p.Amount, 1e-9)
	assert.Equal(t, payments.StatusPending, p.Status)

	// A passenger with no points earns a tenth of the fare.
	updated, err := env.users.GetByID(ctx, passenger.ID)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, updated.LoyaltyPoints, 1e-9)
}

func TestBookSeatSpendsLoyaltyPoints(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	passenger := env.addPassenger(t, "carol", 25)
	flight := env.addFlight(t)

	res, err := env.reservations.Create(ctx, flight.ID, "3A", passenger.ID, payments.MethodCash, payments.Details{})
	require.NoError(t, err)

	// Fare 220 minus the 25 point discount.
	p, err := env.payments.FindByID(ctx, res.PaymentID)
	require.NoError(t, err)
	assert.InDelta(t, 195.0, p.Amount, 1e-9)

	// 10% of the fare is spent from the balance.
	updated, err := env.users.GetByID(ctx, passenger.ID)
	require.NoError(t, err)
	assert.InDelta(t, 25.0-19.5, updated.LoyaltyPoints, 1e-9)
}

func TestDoubleBookingFails(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.addPassenger(t, "alice", 0)
	bob := env.addPassenger(t, "bob", 0)
	flight := env.addFlight(t)

	_, err := env.reservations.Create(ctx, flight.ID, "12C", alice.ID, payments.MethodCash, payments.Details{})
	require.NoError(t, err)

	_, err = env.reservations.Create(ctx, flight.ID, "12C", bob.ID, payments.MethodCash, payments.Details{})
	assert.ErrorIs(t, err, ErrSeatOccupied)
}

func TestBookingRejectsNonPassenger(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	admin, err := env.users.Create(ctx, users.CreateParams{Username: "root", Password: "secret1", Role: users.RoleAdmin})
	require.NoError(t, err)
	flight := env.addFlight(t)

	_, err = env.reservations.Create(ctx, flight.ID, "1A", admin.ID, payments.MethodCash, payments.Details{})
	assert.ErrorIs(t, err, ErrNotPassenger)
}

func TestBookingRejectsInvalidSeat(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	passenger := env.addPassenger(t, "alice", 0)
	flight := env.addFlight(t)

	_, err := env.reservations.Create(ctx, flight.ID, "99Z", passenger.ID, payments.MethodCash, payments.Details{})
	assert.ErrorIs(t, err, flights.ErrInvalidSeat)
}

func TestFailedPaymentLeavesNothingBehind(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	passenger := env.addPassenger(t, "alice", 25)
	flight := env.addFlight(t)

	_, err := env.reservations.Create(ctx, flight.ID, "3A", passenger.ID, payments.MethodCredit, payments.Details{
		CardNumber: "not-a-card",
	})
	require.Error(t, err)

	occupied, err := flight.SeatStatus("3A")
	require.NoError(t, err)
	assert.False(t, occupied)

	unchanged, err := env.users.GetByID(ctx, passenger.ID)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, unchanged.LoyaltyPoints, 1e-9)
}

func TestCancelFreesSeat(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	passenger := env.addPassenger(t, "alice", 0)
	flight := env.addFlight(t)

	res, err := env.reservations.Create(ctx, flight.ID, "8D", passenger.ID, payments.MethodCash, payments.Details{})
	require.NoError(t, err)

	require.NoError(t, env.reservations.Cancel(ctx, res.ID))

	occupied, err := flight.SeatStatus("8D")
	require.NoError(t, err)
	assert.False(t, occupied)

	_, err = env.reservations.GetByID(ctx, res.ID)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestUpdateMovesSeat(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	passenger := env.addPassenger(t, "alice", 0)
	flight := env.addFlight(t)

	res, err := env.reservations.Create(ctx, flight.ID, "8D", passenger.ID, payments.MethodCash, payments.Details{})
	require.NoError(t, err)

	updated, err := env.reservations.Update(ctx, res.ID, flight.ID, "9A")
	require.NoError(t, err)
	assert.Equal(t, "9A", updated.Seat)

	oldOccupied, err := flight.SeatStatus("8D")
	require.NoError(t, err)
	assert.False(t, oldOccupied)

	newOccupied, err := flight.SeatStatus("9A")
	require.NoError(t, err)
	assert.True(t, newOccupied)
}

func TestUpdateRejectsOccupiedTarget(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	alice := env.addPassenger(t, "alice", 0)
	bob := env.addPassenger(t, "bob", 0)
	flight := env.addFlight(t)

	_, err := env.reservations.Create(ctx, flight.ID, "9A", alice.ID, payments.MethodCash, payments.Details{})
	require.NoError(t, err)
	res, err := env.reservations.Create(ctx, flight.ID, "8D", bob.ID, payments.MethodCash, payments.Details{})
	require.NoError(t, err)

	_, err = env.reservations.Update(ctx, res.ID, flight.ID, "9A")
	assert.ErrorIs(t, err, ErrSeatOccupied)
}
