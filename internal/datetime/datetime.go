// Package datetime provides the minute-resolution timestamp value type used
// for flight schedules and payment dates. The wire format is
// "YYYY-MM-DD HH:MM"; parsing also accepts a bare date and single-digit
// components.
package datetime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateTime is a calendar date plus wall-clock time with minute resolution.
// The zero value is invalid and marshals as "0-00-00 00:00"; callers should
// treat it as "not set".
type DateTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
}

// Parse parses "YYYY-MM-DD HH:MM" or "YYYY-MM-DD". Single-digit month,
// day, and hour values are accepted ("2025-3-7 9:05").
func Parse(s string) (DateTime, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return DateTime{}, fmt.Errorf("empty date time value")
	}

	datePart := trimmed
	timePart := ""
	if idx := strings.IndexByte(trimmed, ' '); idx >= 0 {
		datePart = trimmed[:idx]
		timePart = strings.TrimSpace(trimmed[idx+1:])
	}

	var dt DateTime
	if err := dt.parseDate(datePart); err != nil {
		return DateTime{}, err
	}
	if timePart != "" {
		if err := dt.parseTime(timePart); err != nil {
			return DateTime{}, err
		}
	}
	if !dt.Valid() {
		return DateTime{}, fmt.Errorf("invalid date time value: %q", s)
	}
	return dt, nil
}

func (dt *DateTime) parseDate(s string) error {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return fmt.Errorf("invalid date format %q: expected YYYY-MM-DD", s)
	}
	var err error
	if dt.Year, err = strconv.Atoi(parts[0]); err != nil {
		return fmt.Errorf("invalid year in %q", s)
	}
	if dt.Month, err = strconv.Atoi(parts[1]); err != nil {
		return fmt.Errorf("invalid month in %q", s)
	}
	if dt.Day, err = strconv.Atoi(parts[2]); err != nil {
		return fmt.Errorf("invalid day in %q", s)
	}
	return nil
}

func (dt *DateTime) parseTime(s string) error {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid time format %q: expected HH:MM", s)
	}
	var err error
	if dt.Hour, err = strconv.Atoi(parts[0]); err != nil {
		return fmt.Errorf("invalid hour in %q", s)
	}
	if dt.Minute, err = strconv.Atoi(parts[1]); err != nil {
		return fmt.Errorf("invalid minute in %q", s)
	}
	return nil
}

// Now returns the current local time truncated to the minute.
func Now() DateTime {
	t := time.Now()
	return DateTime{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}
}

// Valid reports whether the value denotes a real calendar timestamp,
// including month lengths and leap-year February.
func (dt DateTime) Valid() bool {
	if dt.Year < 0 || dt.Month < 1 || dt.Month > 12 || dt.Day < 1 || dt.Day > 31 ||
		dt.Hour < 0 || dt.Hour > 23 || dt.Minute < 0 || dt.Minute > 59 {
		return false
	}
	switch dt.Month {
	case 4, 6, 9, 11:
		if dt.Day > 30 {
			return false
		}
	case 2:
		leap := (dt.Year%4 == 0 && dt.Year%100 != 0) || dt.Year%400 == 0
		if (leap && dt.Day > 29) || (!leap && dt.Day > 28) {
			return false
		}
	}
	return true
}

// IsZero reports whether dt is the zero value.
func (dt DateTime) IsZero() bool {
	return dt == DateTime{}
}

func (dt DateTime) ordinal() int64 {
	return int64(dt.Year)*1e8 + int64(dt.Month)*1e6 + int64(dt.Day)*1e4 +
		int64(dt.Hour)*1e2 + int64(dt.Minute)
}

// Before reports whether dt is strictly earlier than other.
func (dt DateTime) Before(other DateTime) bool {
	return dt.ordinal() < other.ordinal()
}

// After reports whether dt is strictly later than other.
func (dt DateTime) After(other DateTime) bool {
	return dt.ordinal() > other.ordinal()
}

// SameDay reports whether both values fall on the same calendar day.
func (dt DateTime) SameDay(other DateTime) bool {
	return dt.Year == other.Year && dt.Month == other.Month && dt.Day == other.Day
}

// String formats the value as "YYYY-MM-DD HH:MM" with zero padding.
func (dt DateTime) String() string {
	return fmt.Sprintf("%d-%02d-%02d %02d:%02d", dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute)
}

// MarshalJSON encodes the value in the wire format.
func (dt DateTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(dt.String())), nil
}

// UnmarshalJSON decodes the wire format, rejecting invalid timestamps.
func (dt *DateTime) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("date time must be a JSON string: %w", err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}
