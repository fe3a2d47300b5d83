package reservations

import (
	"context"
	"errors"
	"fmt"

	"flightly/internal/datetime"
	"flightly/internal/flights"
	"flightly/internal/payments"
	"flightly/internal/users"
	"flightly/pkg/logger"
)

var (
	ErrSeatOccupied = errors.New("seat is already occupied")
	ErrNotPassenger = errors.New("user is not a passenger")
)

const (
	loyaltyRate = 0.10
	loyaltyCap  = 100.0
)

type Service interface {
	GetByID(ctx context.Context, id ID) (*Reservation, error)
	List(ctx context.Context) ([]*Reservation, error)
	ListByPassenger(ctx context.Context, passengerID users.ID) ([]*Reservation, error)
	// Quote returns the fare the passenger would pay for the seat,
	// including their loyalty discount.
	Quote(ctx context.Context, flightID flights.ID, seat string, passengerID users.ID) (float64, error)
	// Create books a seat for a passenger, creating the backing payment.
	// The payment is left pending; callers settle it via the payments
	// service once the booking succeeds.
	Create(ctx context.Context, flightID flights.ID, seat string, passengerID users.ID, method payments.Method, details payments.Details) (*Reservation, error)
	// Update moves an existing reservation to another flight or seat.
	Update(ctx context.Context, id ID, flightID flights.ID, seat string) (*Reservation, error)
	// Cancel frees the seat and removes the reservation. Refunding the
	// payment is the caller's responsibility.
	Cancel(ctx context.Context, id ID) error
}

type service struct {
	repo        Repository
	flightRepo  flights.Repository
	userRepo    users.Repository
	paymentRepo payments.Repository
	log         *logger.Logger
}

func NewService(repo Repository, flightRepo flights.Repository, userRepo users.Repository, paymentRepo payments.Repository, log *logger.Logger) Service {
	return &service{
		repo:        repo,
		flightRepo:  flightRepo,
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		log:         log,
	}
}

func (s *service) GetByID(ctx context.Context, id ID) (*Reservation, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Reservation, error) {
	return s.repo.List(ctx)
}

func (s *service) ListByPassenger(ctx context.Context, passengerID users.ID) ([]*Reservation, error) {
	return s.repo.ListByPassenger(ctx, passengerID)
}

func (s *service) Quote(ctx context.Context, flightID flights.ID, seat string, passengerID users.ID) (float64, error) {
	passenger, err := s.passenger(ctx, passengerID)
	if err != nil {
		return 0, err
	}
	flight, err := s.flightRepo.FindByID(ctx, flightID)
	if err != nil {
		return 0, err
	}
	return SeatPrice(seat, flight.SeatsPerRow(), passenger.LoyaltyPoints), nil
}

func (s *service) Create(ctx context.Context, flightID flights.ID, seat string, passengerID users.ID, method payments.Method, details payments.Details) (*Reservation, error) {
	// 1. Only passengers hold reservations.
	passenger, err := s.passenger(ctx, passengerID)
	if err != nil {
		return nil, err
	}

	// 2. The flight must exist and the seat must be free.
	flight, err := s.flightRepo.FindByID(ctx, flightID)
	if err != nil {
		return nil, err
	}
	occupied, err := flight.SeatStatus(seat)
	if err != nil {
		return nil, err
	}
	if occupied {
		return nil, fmt.Errorf("%w: %s on flight %s", ErrSeatOccupied, seat, flightID)
	}

	// 3. Quote the fare and compute the loyalty adjustment up front so
	// a payment failure leaves the passenger untouched.
	price := SeatPrice(seat, flight.SeatsPerRow(), passenger.LoyaltyPoints)
	newPoints := adjustLoyalty(passenger.LoyaltyPoints, price)

	// 4. Record the payment. It stays pending until the caller settles it.
	payment, err := payments.New(passengerID, price, method, details, datetime.Now())
	if err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	// 5. Store the reservation. The payment is intentionally not rolled
	// back here; a stored payment without a reservation is recoverable,
	// a reservation without a payment is not.
	res := New(flightID, passengerID, seat, payment.ID)
	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}

	// 6. Only now mutate shared state: occupy the seat and settle the
	// passenger's loyalty balance.
	if err := flight.SetSeatStatus(seat, true); err != nil {
		return nil, err
	}
	passenger.LoyaltyPoints = newPoints
	if err := s.userRepo.Update(ctx, passenger); err != nil {
		return nil, err
	}

	s.log.LogReservationCreated(string(res.ID), string(flightID), string(passengerID))
	return res, nil
}

func (s *service) Update(ctx context.Context, id ID, flightID flights.ID, seat string) (*Reservation, error) {
	res, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.FlightID == flightID && res.Seat == seat {
		return res, nil
	}

	newFlight, err := s.flightRepo.FindByID(ctx, flightID)
	if err != nil {
		return nil, err
	}
	occupied, err := newFlight.SeatStatus(seat)
	if err != nil {
		return nil, err
	}
	if occupied {
		return nil, fmt.Errorf("%w: %s on flight %s", ErrSeatOccupied, seat, flightID)
	}

	oldFlightID, oldSeat := res.FlightID, res.Seat
	res.FlightID = flightID
	res.Seat = seat
	if err := s.repo.Update(ctx, res); err != nil {
		res.FlightID, res.Seat = oldFlightID, oldSeat
		return nil, err
	}

	// Free the old seat if its flight is still around, then take the new one.
	if oldFlight, err := s.flightRepo.FindByID(ctx, oldFlightID); err == nil {
		if err := oldFlight.SetSeatStatus(oldSeat, false); err != nil {
			return nil, err
		}
	}
	if err := newFlight.SetSeatStatus(seat, true); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) Cancel(ctx context.Context, id ID) error {
	res, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	// If the flight was deleted in the meantime there is no seat to free.
	if flight, err := s.flightRepo.FindByID(ctx, res.FlightID); err == nil {
		if err := flight.SetSeatStatus(res.Seat, false); err != nil {
			return err
		}
	}
	res.Status = StatusCancelled
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.LogReservationCancelled(string(id), string(res.FlightID))
	return nil
}

func (s *service) passenger(ctx context.Context, id users.ID) (*users.User, error) {
	u, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Role != users.RolePassenger {
		return nil, fmt.Errorf("%w: %s has role %s", ErrNotPassenger, id, u.Role)
	}
	return u, nil
}

// adjustLoyalty computes the passenger's balance after booking at the
// given price. Existing points are spent, up to a tenth of the fare;
// a passenger with no points earns a tenth of the fare instead, capped.
func adjustLoyalty(points, price float64) float64 {
	earned := price * loyaltyRate
	if points > 0 {
		spent := earned
		if spent > points {
			spent = points
		}
		return points - spent
	}
	if earned > loyaltyCap {
		earned = loyaltyCap
	}
	return earned
}
