package flights

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"flightly/internal/aircraft"
	"flightly/internal/crew"
	"flightly/internal/datetime"
	"flightly/internal/shared/storage"
)

var (
	ErrFlightNotFound = errors.New("flight not found")
	ErrDuplicateID    = errors.New("flight id already exists")
)

const flightsFile = "flights.json"

// Repository is the in-memory flight collection backed by flights.json.
type Repository interface {
	Load(ctx context.Context) error
	Flush(ctx context.Context) error

	FindByID(ctx context.Context, id ID) (*Flight, error)
	List(ctx context.Context) []*Flight
	ListByRouteAndDay(ctx context.Context, origin, destination string, day datetime.DateTime) []*Flight
	Create(ctx context.Context, f *Flight) error
	Update(ctx context.Context, f *Flight) error
	Delete(ctx context.Context, id ID) error
}

type repository struct {
	store    *storage.Store
	flights  map[ID]*Flight
	aircraft aircraft.Repository
	crew     crew.Repository
}

// NewRepository creates a flight repository over the given store. The
// aircraft and crew repositories are consulted during Load to enforce
// referential integrity of the stored records.
func NewRepository(store *storage.Store, aircraftRepo aircraft.Repository, crewRepo crew.Repository) Repository {
	return &repository{
		store:    store,
		flights:  make(map[ID]*Flight),
		aircraft: aircraftRepo,
		crew:     crewRepo,
	}
}

// Load reads flights.json and verifies each record against the aircraft
// and crew collections: the aircraft must exist, the seat grid must match
// its cabin layout, and every crew reference must resolve.
func (r *repository) Load(ctx context.Context) error {
	var records []*Flight
	if err := r.store.ReadArray(flightsFile, &records); err != nil {
		return err
	}
	for _, f := range records {
		if _, ok := r.flights[f.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, f.ID)
		}
		a, err := r.aircraft.FindByID(ctx, f.AircraftID)
		if err != nil {
			return fmt.Errorf("flight %s: aircraft %s: %w", f.ID, f.AircraftID, err)
		}
		if f.Rows() != a.Rows() || f.SeatsPerRow() != a.SeatsPerRow {
			return fmt.Errorf("flight %s: seat map size does not match aircraft %s", f.ID, a.ID)
		}
		for _, crewID := range f.CrewIDs {
			if _, err := r.crew.FindByID(ctx, crewID); err != nil {
				return fmt.Errorf("flight %s: crew member %s: %w", f.ID, crewID, err)
			}
		}
		r.flights[f.ID] = f
	}
	return nil
}

func (r *repository) Flush(ctx context.Context) error {
	return r.store.WriteArray(flightsFile, r.List(ctx))
}

func (r *repository) FindByID(ctx context.Context, id ID) (*Flight, error) {
	f, ok := r.flights[id]
	if !ok {
		return nil, ErrFlightNotFound
	}
	return f, nil
}

func (r *repository) List(ctx context.Context) []*Flight {
	records := make([]*Flight, 0, len(r.flights))
	for _, f := range r.flights {
		records = append(records, f)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records
}

func (r *repository) ListByRouteAndDay(ctx context.Context, origin, destination string, day datetime.DateTime) []*Flight {
	var filtered []*Flight
	for _, f := range r.List(ctx) {
		if f.Origin == origin && f.Destination == destination && f.Departure.SameDay(day) {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

func (r *repository) Create(ctx context.Context, f *Flight) error {
	if _, ok := r.flights[f.ID]; ok {
		return ErrDuplicateID
	}
	r.flights[f.ID] = f
	return nil
}

func (r *repository) Update(ctx context.Context, f *Flight) error {
	if _, ok := r.flights[f.ID]; !ok {
		return ErrFlightNotFound
	}
	r.flights[f.ID] = f
	return nil
}

func (r *repository) Delete(ctx context.Context, id ID) error {
	if _, ok := r.flights[id]; !ok {
		return ErrFlightNotFound
	}
	delete(r.flights, id)
	return nil
}
