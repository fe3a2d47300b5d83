package reservations

import (
	"encoding/json"
	"fmt"

	"flightly/internal/flights"
	"flightly/internal/payments"
	"flightly/internal/shared/identifier"
	"flightly/internal/users"
)

// ID uniquely identifies a reservation.
type ID string

const IDPrefix = "RES-"

// Status tracks whether a reservation currently holds its seat.
type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) Valid() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// Reservation ties a passenger to a seat on a flight, with the payment
// that settled it.
type Reservation struct {
	ID          ID
	FlightID    flights.ID
	PassengerID users.ID
	Seat        string
	PaymentID   payments.ID
	Status      Status
}

// New builds a confirmed reservation.
func New(flightID flights.ID, passengerID users.ID, seat string, paymentID payments.ID) *Reservation {
	return &Reservation{
		ID:          ID(identifier.New(IDPrefix)),
		FlightID:    flightID,
		PassengerID: passengerID,
		Seat:        seat,
		PaymentID:   paymentID,
		Status:      StatusConfirmed,
	}
}

func (r *Reservation) Validate() error {
	if err := identifier.Validate(string(r.ID), IDPrefix); err != nil {
		return fmt.Errorf("reservation id: %w", err)
	}
	if r.FlightID == "" {
		return fmt.Errorf("reservation %s: flight id is required", r.ID)
	}
	if r.PassengerID == "" {
		return fmt.Errorf("reservation %s: passenger id is required", r.ID)
	}
	if r.Seat == "" {
		return fmt.Errorf("reservation %s: seat is required", r.ID)
	}
	if r.PaymentID == "" {
		return fmt.Errorf("reservation %s: payment id is required", r.ID)
	}
	if !r.Status.Valid() {
		return fmt.Errorf("reservation %s: invalid status %q", r.ID, r.Status)
	}
	return nil
}

type reservationJSON struct {
	ID          ID          `json:"id"`
	FlightID    flights.ID  `json:"flightId"`
	PassengerID users.ID    `json:"passengerId"`
	Seat        string      `json:"seatNumber"`
	PaymentID   payments.ID `json:"paymentId"`
	Status      Status      `json:"status"`
}

func (r *Reservation) MarshalJSON() ([]byte, error) {
	return json.Marshal(reservationJSON{
		ID:          r.ID,
		FlightID:    r.FlightID,
		PassengerID: r.PassengerID,
		Seat:        r.Seat,
		PaymentID:   r.PaymentID,
		Status:      r.Status,
	})
}

func (r *Reservation) UnmarshalJSON(data []byte) error {
	var raw reservationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode reservation: %w", err)
	}
	*r = Reservation{
		ID:          raw.ID,
		FlightID:    raw.FlightID,
		PassengerID: raw.PassengerID,
		Seat:        raw.Seat,
		PaymentID:   raw.PaymentID,
		Status:      raw.Status,
	}
	return r.Validate()
}
