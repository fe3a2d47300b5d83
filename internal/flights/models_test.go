package flights

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightly/internal/aircraft"
	"flightly/internal/crew"
	"flightly/internal/datetime"
)

func testFlight(t *testing.T) *Flight {
	t.Helper()
	a, err := aircraft.New("Airbus A320", 120, 6)
	require.NoError(t, err)
	dep, err := datetime.Parse("2026-10-01 08:30")
	require.NoError(t, err)
	arr, err := datetime.Parse("2026-10-01 11:45")
	require.NoError(t, err)
	f, err := New("Vienna", "Lisbon", dep, arr, a, nil)
	require.NoError(t, err)
	return f
}

func TestNewFlightGrid(t *testing.T) {
	f := testFlight(t)
	assert.Equal(t, 20, f.Rows())
	assert.Equal(t, 6, f.SeatsPerRow())

	occupied, err := f.SeatStatus("1A")
	require.NoError(t, err)
	assert.False(t, occupied)
}

func TestNewFlightRejectsBadSchedule(t *testing.T) {
	a, err := aircraft.New("Airbus A320", 120, 6)
	require.NoError(t, err)
	dep, _ := datetime.Parse("2026-10-01 08:30")
	arr, _ := datetime.Parse("2026-10-01 07:00")

	_, err = New("Vienna", "Lisbon", dep, arr, a, nil)
	assert.Error(t, err, "arrival before departure")

	_, err = New("", "Lisbon", dep, dep, a, nil)
	assert.Error(t, err, "empty origin")
}

func TestSeatStatusLifecycle(t *testing.T) {
	f := testFlight(t)

	require.NoError(t, f.SetSeatStatus("12C", true))
	occupied, err := f.SeatStatus("12C")
	require.NoError(t, err)
	assert.True(t, occupied)

	require.NoError(t, f.SetSeatStatus("12C", false))
	occupied, err = f.SeatStatus("12C")
	require.NoError(t, err)
	assert.False(t, occupied)

	err = f.SetSeatStatus("99Z", true)
	assert.ErrorIs(t, err, ErrInvalidSeat)
}

func TestSeatMapIsACopy(t *testing.T) {
	f := testFlight(t)
	grid := f.SeatMap()
	grid[0][0] = true

	occupied, err := f.SeatStatus("1A")
	require.NoError(t, err)
	assert.False(t, occupied)
}

func TestFlightJSONRoundTrip(t *testing.T) {
	f := testFlight(t)
	f.CrewIDs = []crew.ID{"CM-AB12CD34"}
	require.NoError(t, f.SetSeatStatus("3A", true))

	data, err := json.Marshal(f)
	require.NoError(t, err)

	var got Flight
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, f.ID, got.ID)
	assert.Equal(t, f.Origin, got.Origin)
	assert.Equal(t, f.Destination, got.Destination)
	assert.Equal(t, f.CrewIDs, got.CrewIDs)
	assert.Equal(t, f.Rows(), got.Rows())

	occupied, err := got.SeatStatus("3A")
	require.NoError(t, err)
	assert.True(t, occupied)
}

func TestCrewAssignment(t *testing.T) {
	f := testFlight(t)
	f.AddCrew("CM-AB12CD34")
	f.AddCrew("CM-EF56AB78")

	assert.True(t, f.RemoveCrew("CM-AB12CD34"))
	assert.False(t, f.RemoveCrew("CM-AB12CD34"))
	assert.Equal(t, []crew.ID{"CM-EF56AB78"}, f.CrewIDs)
}
