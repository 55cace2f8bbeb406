package testutil

import (
	"testing"

	"github.com/roach88/dayquery/internal/journal"
)

// Day parses "YYYY-MM-DD" or fails the test.
func Day(t testing.TB, s string) journal.Day {
	t.Helper()
	d, err := journal.ParseDay(s)
	if err != nil {
		t.Fatalf("testutil.Day(%q): %v", s, err)
	}
	return d
}

// Calm returns a record for day with every field rated 1.
func Calm(day journal.Day) journal.Record {
	return journal.NewRecord(day, 1, 1, 1, 1, 1)
}

// Series builds records for consecutive days starting at start. Each value
// sets field on one day; every other field is rated 1.
func Series(start journal.Day, field journal.Field, values ...journal.Rating) []journal.Record {
	records := make([]journal.Record, len(values))
	day := start
	for i, v := range values {
		r := Calm(day)
		r.Ratings[field] = v
		records[i] = r
		day = day.Next()
	}
	return records
}

// Without returns records minus those on the given days, preserving order.
func Without(records []journal.Record, days ...journal.Day) []journal.Record {
	drop := make(map[journal.Day]struct{}, len(days))
	for _, d := range days {
		drop[d] = struct{}{}
	}
	out := make([]journal.Record, 0, len(records))
	for _, r := range records {
		if _, ok := drop[r.Day]; !ok {
			out = append(out, r)
		}
	}
	return out
}
