package reservations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeatPrice(t *testing.T) {
	tests := []struct {
		name        string
		seat        string
		seatsPerRow int
		points      float64
		want        float64
	}{
		{name: "front window", seat: "3A", seatsPerRow: 6, want: 220},
		{name: "middle aisle", seat: "10C", seatsPerRow: 6, want: 160},
		{name: "back middle", seat: "20B", seatsPerRow: 6, want: 100},
		{name: "last column is window", seat: "3F", seatsPerRow: 6, want: 220},
		{name: "last column D prices as window only", seat: "3D", seatsPerRow: 4, want: 220},
		{name: "inner aisle in narrow cabin", seat: "3C", seatsPerRow: 4, want: 210},
		{name: "band edge row 5", seat: "5B", seatsPerRow: 6, want: 200},
		{name: "band edge row 6", seat: "6B", seatsPerRow: 6, want: 150},
		{name: "band edge row 15", seat: "15B", seatsPerRow: 6, want: 150},
		{name: "band edge row 16", seat: "16B", seatsPerRow: 6, want: 100},
		{name: "empty seat defaults to base", seat: "", seatsPerRow: 6, want: 100},
		{name: "undecodable seat defaults to base", seat: "A3", seatsPerRow: 6, want: 100},
		{name: "points below cap", seat: "20B", seatsPerRow: 6, points: 20, want: 80},
		{name: "points above cap clamp to 30 percent", seat: "20B", seatsPerRow: 6, points: 50, want: 70},
		{name: "discount applies to premium too", seat: "3A", seatsPerRow: 6, points: 100, want: 154},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, SeatPrice(tc.seat, tc.seatsPerRow, tc.points), 1e-9)
		})
	}
}

func TestSeatPriceDiscountNeverExceedsThirtyPercent(t *testing.T) {
	for _, seat := range []string{"1A", "8C", "22B", "3F"} {
		full := SeatPrice(seat, 6, 0)
		discounted := SeatPrice(seat, 6, 1e6)
		assert.InDelta(t, full*0.7, discounted, 1e-9, "seat %s", seat)
	}
}
