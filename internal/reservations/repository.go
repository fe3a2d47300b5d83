package reservations

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"flightly/internal/flights"
	"flightly/internal/payments"
	"flightly/internal/shared/storage"
	"flightly/internal/users"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrDuplicateID         = errors.New("duplicate reservation id")
)

const reservationsFile = "reservations.json"

type Repository interface {
	Load(ctx context.Context) error
	Flush(ctx context.Context) error
	FindByID(ctx context.Context, id ID) (*Reservation, error)
	List(ctx context.Context) ([]*Reservation, error)
	ListByPassenger(ctx context.Context, passengerID users.ID) ([]*Reservation, error)
	ListByFlight(ctx context.Context, flightID flights.ID) ([]*Reservation, error)
	Create(ctx context.Context, res *Reservation) error
	Update(ctx context.Context, res *Reservation) error
	Delete(ctx context.Context, id ID) error
}

type repository struct {
	store        *storage.Store
	flightRepo   flights.Repository
	userRepo     users.Repository
	paymentRepo  payments.Repository
	reservations map[ID]*Reservation
}

// NewRepository creates a reservation repository over the given store.
// The flight, user, and payment repositories are consulted during Load
// to enforce referential integrity and to re-occupy seats held by
// confirmed reservations.
func NewRepository(store *storage.Store, flightRepo flights.Repository, userRepo users.Repository, paymentRepo payments.Repository) Repository {
	return &repository{
		store:        store,
		flightRepo:   flightRepo,
		userRepo:     userRepo,
		paymentRepo:  paymentRepo,
		reservations: make(map[ID]*Reservation),
	}
}

func (r *repository) Load(ctx context.Context) error {
	var records []*Reservation
	if err := r.store.ReadArray(reservationsFile, &records); err != nil {
		return fmt.Errorf("failed to load reservations: %w", err)
	}
	reservations := make(map[ID]*Reservation, len(records))
	for _, res := range records {
		if _, ok := reservations[res.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, res.ID)
		}
		flight, err := r.flightRepo.FindByID(ctx, res.FlightID)
		if err != nil {
			return fmt.Errorf("reservation %s references unknown flight %s: %w", res.ID, res.FlightID, err)
		}
		if _, err := r.userRepo.FindByID(ctx, res.PassengerID); err != nil {
			return fmt.Errorf("reservation %s references unknown passenger %s: %w", res.ID, res.PassengerID, err)
		}
		if _, err := r.paymentRepo.FindByID(ctx, res.PaymentID); err != nil {
			return fmt.Errorf("reservation %s references unknown payment %s: %w", res.ID, res.PaymentID, err)
		}
		// A confirmed reservation still holds its seat across restarts.
		if res.Status == StatusConfirmed {
			if err := flight.SetSeatStatus(res.Seat, true); err != nil {
				return fmt.Errorf("reservation %s holds invalid seat %s on flight %s: %w", res.ID, res.Seat, res.FlightID, err)
			}
		}
		reservations[res.ID] = res
	}
	r.reservations = reservations
	return nil
}

func (r *repository) Flush(ctx context.Context) error {
	records, err := r.List(ctx)
	if err != nil {
		return err
	}
	if err := r.store.WriteArray(reservationsFile, records); err != nil {
		return fmt.Errorf("failed to flush reservations: %w", err)
	}
	return nil
}

func (r *repository) FindByID(ctx context.Context, id ID) (*Reservation, error) {
	res, ok := r.reservations[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrReservationNotFound, id)
	}
	return res, nil
}

func (r *repository) List(ctx context.Context) ([]*Reservation, error) {
	records := make([]*Reservation, 0, len(r.reservations))
	for _, res := range r.reservations {
		records = append(records, res)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

func (r *repository) ListByPassenger(ctx context.Context, passengerID users.ID) ([]*Reservation, error) {
	var records []*Reservation
	for _, res := range r.reservations {
		if res.PassengerID == passengerID {
			records = append(records, res)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

func (r *repository) ListByFlight(ctx context.Context, flightID flights.ID) ([]*Reservation, error) {
	var records []*Reservation
	for _, res := range r.reservations {
		if res.FlightID == flightID {
			records = append(records, res)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

func (r *repository) Create(ctx context.Context, res *Reservation) error {
	if _, ok := r.reservations[res.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, res.ID)
	}
	r.reservations[res.ID] = res
	return nil
}

func (r *repository) Update(ctx context.Context, res *Reservation) error {
	if _, ok := r.reservations[res.ID]; !ok {
		return fmt.Errorf("%w: %s", ErrReservationNotFound, res.ID)
	}
	r.reservations[res.ID] = res
	return nil
}

func (r *repository) Delete(ctx context.Context, id ID) error {
	if _, ok := r.reservations[id]; !ok {
		return fmt.Errorf("%w: %s", ErrReservationNotFound, id)
	}
	delete(r.reservations, id)
	return nil
}
