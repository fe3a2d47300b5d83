package datetime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    DateTime
		wantErr bool
	}{
		{in: "2026-10-01 08:30", want: DateTime{2026, 10, 1, 8, 30}},
		{in: "2026-10-01", want: DateTime{Year: 2026, Month: 10, Day: 1}},
		{in: "2025-3-7 9:05", want: DateTime{2025, 3, 7, 9, 5}},
		{in: "  2026-10-01 08:30  ", want: DateTime{2026, 10, 1, 8, 30}},
		{in: "", wantErr: true},
		{in: "2026/10/01", wantErr: true},
		{in: "2026-10-01 08:30:00", wantErr: true},
		{in: "2026-13-01", wantErr: true},
		{in: "2026-04-31", wantErr: true},
		{in: "2026-10-01 24:00", wantErr: true},
		{in: "2026-10-01 08:60", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLeapYearFebruary(t *testing.T) {
	_, err := Parse("2024-02-29")
	assert.NoError(t, err, "2024 is a leap year")

	_, err = Parse("2025-02-29")
	assert.Error(t, err, "2025 is not a leap year")

	_, err = Parse("2000-02-29")
	assert.NoError(t, err, "2000 is a leap year")

	_, err = Parse("1900-02-29")
	assert.Error(t, err, "1900 is not a leap year")
}

func TestOrdering(t *testing.T) {
	earlier, _ := Parse("2026-10-01 08:30")
	later, _ := Parse("2026-10-01 11:45")
	nextDay, _ := Parse("2026-10-02 00:00")

	assert.True(t, earlier.Before(later))
	assert.True(t, later.After(earlier))
	assert.False(t, earlier.Before(earlier))

	assert.True(t, earlier.SameDay(later))
	assert.False(t, earlier.SameDay(nextDay))
}

func TestString(t *testing.T) {
	dt, _ := Parse("2025-3-7 9:05")
	assert.Equal(t, "2025-03-07 09:05", dt.String())
}

func TestJSONRoundTrip(t *testing.T) {
	dt, _ := Parse("2026-10-01 08:30")

	data, err := json.Marshal(dt)
	require.NoError(t, err)
	assert.Equal(t, `"2026-10-01 08:30"`, string(data))

	var got DateTime
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, dt, got)

	assert.Error(t, json.Unmarshal([]byte(`"2026-02-30 08:30"`), &got))
	assert.Error(t, json.Unmarshal([]byte(`42`), &got))
}
