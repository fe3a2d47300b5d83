package flights

import (
	"encoding/json"
	"fmt"

	"flightly/internal/aircraft"
	"flightly/internal/crew"
	"flightly/internal/datetime"
	"flightly/internal/shared/identifier"
)

// ID is a flight identifier, prefixed "FL-".
type ID string

const IDPrefix = "FL-"

// Flight is a scheduled flight together with its seat occupancy grid. The
// grid is sized rows x seatsPerRow from the assigned aircraft at creation
// and is only reachable through the seat-code accessors, so every mutation
// goes through seat validation.
type Flight struct {
	ID          ID
	Origin      string
	Destination string
	Departure   datetime.DateTime
	Arrival     datetime.DateTime
	AircraftID  aircraft.ID
	CrewIDs     []crew.ID

	seats [][]bool
}

// New validates the schedule and returns a flight with a fresh ID and an
// all-free seat grid sized from the aircraft's cabin layout. Aircraft and
// crew existence are the caller's (service's) responsibility.
func New(origin, destination string, departure, arrival datetime.DateTime, a *aircraft.Aircraft, crewIDs []crew.ID) (*Flight, error) {
	f := &Flight{
		ID:          ID(identifier.New(IDPrefix)),
		Origin:      origin,
		Destination: destination,
		Departure:   departure,
		Arrival:     arrival,
		AircraftID:  a.ID,
		CrewIDs:     append([]crew.ID(nil), crewIDs...),
	}
	if err := f.validateSchedule(); err != nil {
		return nil, err
	}

	f.seats = make([][]bool, a.Rows())
	for i := range f.seats {
		f.seats[i] = make([]bool, a.SeatsPerRow)
	}
	return f, nil
}

func (f *Flight) validateSchedule() error {
	if err := identifier.Validate(string(f.ID), IDPrefix); err != nil {
		return err
	}
	if f.Origin == "" || f.Destination == "" {
		return fmt.Errorf("origin and destination cannot be empty")
	}
	if !f.Departure.Valid() || !f.Arrival.Valid() {
		return fmt.Errorf("flight %s: invalid departure or arrival time", f.ID)
	}
	if !f.Arrival.After(f.Departure) {
		return fmt.Errorf("flight %s: arrival time must be after departure time", f.ID)
	}
	return nil
}

// Rows returns the number of seat rows on this flight.
func (f *Flight) Rows() int {
	return len(f.seats)
}

// SeatsPerRow returns the cabin width of this flight.
func (f *Flight) SeatsPerRow() int {
	if len(f.seats) == 0 {
		return 0
	}
	return len(f.seats[0])
}

// SeatStatus reports whether the seat is occupied. It fails with
// ErrInvalidSeat when the code does not resolve to a seat on this flight.
func (f *Flight) SeatStatus(code string) (bool, error) {
	row, col, err := ParseSeat(code, f.Rows(), f.SeatsPerRow())
	if err != nil {
		return false, err
	}
	return f.seats[row][col], nil
}

// SetSeatStatus marks the seat occupied or free. It fails with
// ErrInvalidSeat when the code does not resolve to a seat on this flight.
func (f *Flight) SetSeatStatus(code string, occupied bool) error {
	row, col, err := ParseSeat(code, f.Rows(), f.SeatsPerRow())
	if err != nil {
		return err
	}
	f.seats[row][col] = occupied
	return nil
}

// IsValidSeat reports whether the code resolves to a seat on this flight.
// Unlike SeatStatus it never fails.
func (f *Flight) IsValidSeat(code string) bool {
	_, _, err := ParseSeat(code, f.Rows(), f.SeatsPerRow())
	return err == nil
}

// SeatMap returns a copy of the occupancy grid for display.
func (f *Flight) SeatMap() [][]bool {
	grid := make([][]bool, len(f.seats))
	for i, row := range f.seats {
		grid[i] = append([]bool(nil), row...)
	}
	return grid
}

// AddCrew appends a crew member to the flight.
func (f *Flight) AddCrew(id crew.ID) {
	f.CrewIDs = append(f.CrewIDs, id)
}

// RemoveCrew removes a crew member from the flight, reporting whether the
// member was assigned.
func (f *Flight) RemoveCrew(id crew.ID) bool {
	for i, existing := range f.CrewIDs {
		if existing == id {
			f.CrewIDs = append(f.CrewIDs[:i], f.CrewIDs[i+1:]...)
			return true
		}
	}
	return false
}

type flightJSON struct {
	ID          ID                `json:"id"`
	Origin      string            `json:"origin"`
	Destination string            `json:"destination"`
	Departure   datetime.DateTime `json:"departureTime"`
	Arrival     datetime.DateTime `json:"arrivalTime"`
	AircraftID  aircraft.ID       `json:"aircraftId"`
	CrewIDs     []crew.ID         `json:"crewMemberIds"`
	SeatMap     [][]bool          `json:"seatMap"`
}

func (f Flight) MarshalJSON() ([]byte, error) {
	return json.Marshal(flightJSON{
		ID:          f.ID,
		Origin:      f.Origin,
		Destination: f.Destination,
		Departure:   f.Departure,
		Arrival:     f.Arrival,
		AircraftID:  f.AircraftID,
		CrewIDs:     f.CrewIDs,
		SeatMap:     f.seats,
	})
}

// UnmarshalJSON performs the structural checks; referential checks against
// aircraft and crew, and the grid-size check, happen in the repository
// where those collections are reachable.
func (f *Flight) UnmarshalJSON(data []byte) error {
	var in flightJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	f.ID = in.ID
	f.Origin = in.Origin
	f.Destination = in.Destination
	f.Departure = in.Departure
	f.Arrival = in.Arrival
	f.AircraftID = in.AircraftID
	f.CrewIDs = in.CrewIDs
	f.seats = in.SeatMap

	if err := f.validateSchedule(); err != nil {
		return err
	}
	if len(f.seats) == 0 {
		return fmt.Errorf("flight %s: missing seat map", f.ID)
	}
	width := len(f.seats[0])
	for _, row := range f.seats {
		if len(row) != width {
			return fmt.Errorf("flight %s: ragged seat map", f.ID)
		}
	}
	return nil
}
