package flights

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidSeat is returned when a seat code cannot be resolved against a
// flight's cabin geometry.
var ErrInvalidSeat = errors.New("invalid seat number")

// ParseSeat decodes a seat code such as "12A" into zero-based row and
// column indices, validated against a cabin of rows x cols seats. The code
// is one or more digits (1-based row) followed by exactly one column
// letter, 'A' for the first column.
func ParseSeat(code string, rows, cols int) (row, col int, err error) {
	if code == "" {
		return 0, 0, fmt.Errorf("%w: empty seat code", ErrInvalidSeat)
	}

	// Locate the first non-digit; it must be the single trailing letter.
	split := -1
	for i, c := range code {
		if c < '0' || c > '9' {
			split = i
			break
		}
	}
	if split <= 0 || split != len(code)-1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSeat, code)
	}

	letter := code[split]
	if letter < 'A' || int(letter-'A') >= cols {
		return 0, 0, fmt.Errorf("%w: column %q out of range", ErrInvalidSeat, string(letter))
	}

	rowNum, err := strconv.Atoi(code[:split])
	if err != nil || rowNum < 1 || rowNum > rows {
		return 0, 0, fmt.Errorf("%w: row %q out of range", ErrInvalidSeat, code[:split])
	}

	return rowNum - 1, int(letter - 'A'), nil
}

// FormatSeat is the inverse of ParseSeat for zero-based indices.
func FormatSeat(row, col int) string {
	return strconv.Itoa(row+1) + string(rune('A'+col))
}
