package reservations

// Seat pricing is banded by row with premiums for window and aisle
// positions. The seat code is parsed leniently here: a code that does
// not decompose into digits plus one letter still yields the default
// base fare so quoting never fails outright.

const (
	defaultBase = 100.0

	frontRowFare  = 200.0
	middleRowFare = 150.0
	backRowFare   = 100.0

	windowPremium = 20.0
	aislePremium  = 10.0

	maxDiscountRate = 0.30
)

// SeatPrice quotes the fare for a seat code in a cabin with seatsPerRow
// columns, applying a loyalty discount of up to 30% of the fare.
// Rows 1-5 are the front band, 6-15 the middle band, 16 and up the back
// band. The first and last columns are windows; columns C and D are
// aisles.
func SeatPrice(seat string, seatsPerRow int, loyaltyPoints float64) float64 {
	row, col, ok := splitSeat(seat)

	base := defaultBase
	premium := 0.0
	if ok {
		switch {
		case row <= 5:
			base = frontRowFare
		case row <= 15:
			base = middleRowFare
		default:
			base = backRowFare
		}
		// Window takes precedence when a column qualifies as both,
		// as in narrow cabins where the last column is C or D.
		switch {
		case col == 'A' || (seatsPerRow > 0 && col == byte('A'+seatsPerRow-1)):
			premium = windowPremium
		case col == 'C' || col == 'D':
			premium = aislePremium
		}
	}

	price := base + premium
	discount := loyaltyPoints
	if limit := price * maxDiscountRate; discount > limit {
		discount = limit
	}
	if discount < 0 {
		discount = 0
	}
	return price - discount
}

// splitSeat decomposes a seat code into a 1-based row and a column
// letter. Unlike the strict cabin-bound parser in the flights package
// it checks shape only, not geometry.
func splitSeat(seat string) (row int, col byte, ok bool) {
	if len(seat) < 2 {
		return 0, 0, false
	}
	for i := 0; i < len(seat)-1; i++ {
		c := seat[i]
		if c < '0' || c > '9' {
			return 0, 0, false
		}
		row = row*10 + int(c-'0')
	}
	col = seat[len(seat)-1]
	if col < 'A' || col > 'Z' {
		return 0, 0, false
	}
	if row < 1 {
		return 0, 0, false
	}
	return row, col, true
}
