package journal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Day identifies one calendar day. The zero Day is not a valid date.
//
// Day is comparable and is used directly as a map key wherever records are
// matched or de-duplicated.
type Day struct {
	Year  int
	Month int
	Day   int
}

// NewDay returns the Day for year/month/day without validation.
func NewDay(year, month, day int) Day {
	return Day{Year: year, Month: month, Day: day}
}

// DayOf returns the calendar day of t in t's location.
func DayOf(t time.Time) Day {
	return Day{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// ParseDay parses "YYYY-MM-DD". Single-digit month and day are accepted
// ("2024-3-5") since older exports wrote days unpadded.
func ParseDay(s string) (Day, error) {
	pieces := strings.Split(strings.TrimSpace(s), "-")
	if len(pieces) != 3 {
		return Day{}, fmt.Errorf("parse day %q: want YYYY-MM-DD", s)
	}

	var parts [3]int
	for i, piece := range pieces {
		n, err := strconv.Atoi(piece)
		if err != nil {
			return Day{}, fmt.Errorf("parse day %q: %w", s, err)
		}
		parts[i] = n
	}

	d := Day{Year: parts[0], Month: parts[1], Day: parts[2]}
	if !d.Valid() {
		return Day{}, fmt.Errorf("parse day %q: not a calendar date", s)
	}
	return d, nil
}

// Valid reports whether d names a real calendar date.
func (d Day) Valid() bool {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	return d.Time().Day() == d.Day
}

// Time returns midnight UTC of d. Out-of-range components are normalized
// the way time.Date normalizes them.
func (d Day) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// Next returns the following calendar day.
func (d Day) Next() Day {
	return DayOf(d.Time().AddDate(0, 0, 1))
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to,
// or after other.
func (d Day) Compare(other Day) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(d.Month, other.Month)
	default:
		return cmpInt(d.Day, other.Day)
	}
}

// Before reports whether d is strictly earlier than other.
func (d Day) Before(other Day) bool {
	return d.Compare(other) < 0
}

// String formats d as YYYY-MM-DD.
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalText implements encoding.TextMarshaler so days read naturally in
// JSON and YAML.
func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Day) UnmarshalText(text []byte) error {
	parsed, err := ParseDay(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
