package aircraft

import (
	"encoding/json"
	"fmt"

	"flightly/internal/shared/identifier"
)

// ID is an aircraft identifier, prefixed "AC-".
type ID string

const IDPrefix = "AC-"

// MaxSeatsPerRow bounds the cabin width so every column maps to a single
// letter 'A'..'Z' in seat codes.
const MaxSeatsPerRow = 26

// Aircraft describes a cabin layout: total capacity split into rows of
// equal width. Rows is derived and kept consistent with Capacity and
// SeatsPerRow at all times.
type Aircraft struct {
	ID          ID
	Model       string
	Capacity    int
	SeatsPerRow int
}

// New validates the layout parameters and returns an aircraft with a
// fresh ID.
func New(model string, capacity, seatsPerRow int) (*Aircraft, error) {
	a := &Aircraft{
		ID:          ID(identifier.New(IDPrefix)),
		Model:       model,
		Capacity:    capacity,
		SeatsPerRow: seatsPerRow,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Rows returns the number of seat rows in the cabin.
func (a *Aircraft) Rows() int {
	return a.Capacity / a.SeatsPerRow
}

// Validate checks the cabin layout invariants.
func (a *Aircraft) Validate() error {
	if err := identifier.Validate(string(a.ID), IDPrefix); err != nil {
		return err
	}
	if a.Model == "" {
		return fmt.Errorf("aircraft model cannot be empty")
	}
	if a.Capacity <= 0 {
		return fmt.Errorf("aircraft capacity must be positive")
	}
	if a.SeatsPerRow <= 0 {
		return fmt.Errorf("number of seats per row must be positive")
	}
	if a.SeatsPerRow > MaxSeatsPerRow {
		return fmt.Errorf("number of seats per row cannot be greater than %d", MaxSeatsPerRow)
	}
	if a.Capacity%a.SeatsPerRow != 0 {
		return fmt.Errorf("aircraft capacity must be a multiple of the number of seats per row")
	}
	return nil
}

type aircraftJSON struct {
	ID          ID     `json:"id"`
	Model       string `json:"model"`
	Capacity    int    `json:"capacity"`
	SeatsPerRow int    `json:"numOfRowSeats"`
}

func (a Aircraft) MarshalJSON() ([]byte, error) {
	return json.Marshal(aircraftJSON{
		ID:          a.ID,
		Model:       a.Model,
		Capacity:    a.Capacity,
		SeatsPerRow: a.SeatsPerRow,
	})
}

func (a *Aircraft) UnmarshalJSON(data []byte) error {
	var in aircraftJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	a.ID = in.ID
	a.Model = in.Model
	a.Capacity = in.Capacity
	a.SeatsPerRow = in.SeatsPerRow
	return a.Validate()
}
