package aircraft

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAircraft(t *testing.T) {
	a, err := New("Airbus A320", 180, 6)
	require.NoError(t, err)
	assert.Equal(t, 30, a.Rows())
	assert.Equal(t, "AC-", string(a.ID[:3]))
}

func TestNewAircraftRejectsBadLayout(t *testing.T) {
	tests := []struct {
		name        string
		model       string
		capacity    int
		seatsPerRow int
	}{
		{name: "empty model", model: "", capacity: 180, seatsPerRow: 6},
		{name: "zero capacity", model: "A320", capacity: 0, seatsPerRow: 6},
		{name: "zero seats per row", model: "A320", capacity: 180, seatsPerRow: 0},
		{name: "too many seats per row", model: "A320", capacity: 270, seatsPerRow: 27},
		{name: "capacity not divisible", model: "A320", capacity: 100, seatsPerRow: 6},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.model, tc.capacity, tc.seatsPerRow)
			assert.Error(t, err)
		})
	}
}

func TestAircraftJSONRoundTrip(t *testing.T) {
	a, err := New("Embraer E190", 100, 4)
	require.NoError(t, err)

	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"numOfRowSeats":4`)

	var got Aircraft
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *a, got)
}
