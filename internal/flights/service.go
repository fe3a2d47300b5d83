package flights

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"flightly/internal/aircraft"
	"flightly/internal/crew"
	"flightly/internal/datetime"
)

// CreateParams carries the fields needed to schedule a flight.
type CreateParams struct {
	Origin      string `validate:"required"`
	Destination string `validate:"required,nefield=Origin"`
	Departure   datetime.DateTime
	Arrival     datetime.DateTime
	AircraftID  aircraft.ID `validate:"required"`
	CrewIDs     []crew.ID
}

// Service implements flight scheduling and crew assignment.
type Service interface {
	GetByID(ctx context.Context, id ID) (*Flight, error)
	List(ctx context.Context) []*Flight
	SearchByRouteAndDay(ctx context.Context, origin, destination string, day datetime.DateTime) []*Flight
	Create(ctx context.Context, params CreateParams) (*Flight, error)
	Update(ctx context.Context, id ID, params CreateParams) error
	Delete(ctx context.Context, id ID) error

	AssignCrew(ctx context.Context, flightID ID, crewID crew.ID) error
	RemoveCrew(ctx context.Context, flightID ID, crewID crew.ID) error
	CrewOfFlight(ctx context.Context, flightID ID) ([]*crew.Member, error)
}

type service struct {
	repo     Repository
	aircraft aircraft.Repository
	crew     crew.Repository
	validate *validator.Validate
}

// NewService creates a flight service instance.
func NewService(repo Repository, aircraftRepo aircraft.Repository, crewRepo crew.Repository) Service {
	return &service{
		repo:     repo,
		aircraft: aircraftRepo,
		crew:     crewRepo,
		validate: validator.New(),
	}
}

func (s *service) GetByID(ctx context.Context, id ID) (*Flight, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context) []*Flight {
	return s.repo.List(ctx)
}

func (s *service) SearchByRouteAndDay(ctx context.Context, origin, destination string, day datetime.DateTime) []*Flight {
	return s.repo.ListByRouteAndDay(ctx, origin, destination, day)
}

// Create schedules a new flight. The aircraft and all crew members must
// already exist.
func (s *service) Create(ctx context.Context, params CreateParams) (*Flight, error) {
	if err := s.validate.Struct(&params); err != nil {
		return nil, fmt.Errorf("invalid flight parameters: %w", err)
	}
	a, err := s.aircraft.FindByID(ctx, params.AircraftID)
	if err != nil {
		return nil, fmt.Errorf("aircraft %s: %w", params.AircraftID, err)
	}
	for _, crewID := range params.CrewIDs {
		if _, err := s.crew.FindByID(ctx, crewID); err != nil {
			return nil, fmt.Errorf("crew member %s: %w", crewID, err)
		}
	}

	f, err := New(params.Origin, params.Destination, params.Departure, params.Arrival, a, params.CrewIDs)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Update changes the schedule of an existing flight. Changing the aircraft
// is rejected when the new cabin layout does not match the current seat
// grid, since occupancy could not be carried over.
func (s *service) Update(ctx context.Context, id ID, params CreateParams) error {
	if err := s.validate.Struct(&params); err != nil {
		return fmt.Errorf("invalid flight parameters: %w", err)
	}
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !params.Departure.Valid() || !params.Arrival.Valid() || !params.Arrival.After(params.Departure) {
		return fmt.Errorf("arrival time must be after departure time")
	}
	a, err := s.aircraft.FindByID(ctx, params.AircraftID)
	if err != nil {
		return fmt.Errorf("aircraft %s: %w", params.AircraftID, err)
	}
	if a.Rows() != f.Rows() || a.SeatsPerRow != f.SeatsPerRow() {
		return fmt.Errorf("aircraft %s cabin layout does not match the existing seat map", a.ID)
	}

	f.Origin = params.Origin
	f.Destination = params.Destination
	f.Departure = params.Departure
	f.Arrival = params.Arrival
	f.AircraftID = params.AircraftID
	return s.repo.Update(ctx, f)
}

func (s *service) Delete(ctx context.Context, id ID) error {
	return s.repo.Delete(ctx, id)
}

// AssignCrew adds a crew member to a flight.
func (s *service) AssignCrew(ctx context.Context, flightID ID, crewID crew.ID) error {
	f, err := s.repo.FindByID(ctx, flightID)
	if err != nil {
		return err
	}
	if _, err := s.crew.FindByID(ctx, crewID); err != nil {
		return fmt.Errorf("crew member %s: %w", crewID, err)
	}
	for _, existing := range f.CrewIDs {
		if existing == crewID {
			return fmt.Errorf("crew member %s is already assigned to flight %s", crewID, flightID)
		}
	}
	f.AddCrew(crewID)
	return s.repo.Update(ctx, f)
}

// RemoveCrew removes a crew member from a flight.
func (s *service) RemoveCrew(ctx context.Context, flightID ID, crewID crew.ID) error {
	f, err := s.repo.FindByID(ctx, flightID)
	if err != nil {
		return err
	}
	if !f.RemoveCrew(crewID) {
		return fmt.Errorf("crew member %s is not assigned to flight %s", crewID, flightID)
	}
	return s.repo.Update(ctx, f)
}

// CrewOfFlight resolves the flight's crew references, skipping members
// that no longer exist.
func (s *service) CrewOfFlight(ctx context.Context, flightID ID) ([]*crew.Member, error) {
	f, err := s.repo.FindByID(ctx, flightID)
	if err != nil {
		return nil, err
	}
	var members []*crew.Member
	for _, crewID := range f.CrewIDs {
		if m, err := s.crew.FindByID(ctx, crewID); err == nil {
			members = append(members, m)
		}
	}
	return members, nil
}
