package journal

import (
	"fmt"
	"sort"
)

// Record is one calendar day's ratings.
type Record struct {
	Day     Day              `json:"day" yaml:"day"`
	Ratings map[Field]Rating `json:"ratings" yaml:"ratings"`
}

// NewRecord builds a Record from ratings given in Fields order. Missing
// trailing ratings are left unset, so Validate reports them.
func NewRecord(day Day, ratings ...Rating) Record {
	r := Record{Day: day, Ratings: make(map[Field]Rating, len(Fields))}
	for i, rating := range ratings {
		if i >= len(Fields) {
			break
		}
		r.Ratings[Fields[i]] = rating
	}
	return r
}

// Rating returns the rating for f, or 0 when the record has none.
func (r Record) Rating(f Field) Rating {
	return r.Ratings[f]
}

// Validate checks that the day is a real date and every Field carries a
// valid Rating. Unknown fields are rejected too.
func (r Record) Validate() error {
	if !r.Day.Valid() {
		return fmt.Errorf("record %v: invalid day", r.Day)
	}
	for _, f := range Fields {
		rating, ok := r.Ratings[f]
		if !ok {
			return fmt.Errorf("record %s: missing rating for %s", r.Day, f)
		}
		if !rating.Valid() {
			return fmt.Errorf("record %s: %s: rating %d out of range 1..4", r.Day, f, rating)
		}
	}
	for f := range r.Ratings {
		if !f.Valid() {
			return fmt.Errorf("record %s: unknown field %q", r.Day, f)
		}
	}
	return nil
}

// ValidateSet validates every record and enforces at most one record per day.
func ValidateSet(records []Record) error {
	seen := make(map[Day]struct{}, len(records))
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return err
		}
		if _, dup := seen[r.Day]; dup {
			return fmt.Errorf("duplicate record for %s", r.Day)
		}
		seen[r.Day] = struct{}{}
	}
	return nil
}

// SortByDay returns a copy of records sorted ascending by day. The sort is
// stable and the input slice is left untouched.
func SortByDay(records []Record) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Day.Before(sorted[j].Day)
	})
	return sorted
}

// DaySet collects the days of records.
func DaySet(records []Record) map[Day]struct{} {
	set := make(map[Day]struct{}, len(records))
	for _, r := range records {
		set[r.Day] = struct{}{}
	}
	return set
}

// Days returns the days of records in order.
func Days(records []Record) []Day {
	days := make([]Day, len(records))
	for i, r := range records {
		days[i] = r.Day
	}
	return days
}
