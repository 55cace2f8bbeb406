package engine

import (
	"github.com/roach88/dayquery/internal/journal"
	"github.com/roach88/dayquery/internal/query"
)

// Period is a non-empty run of records on consecutive calendar days,
// ordered by day.
type Period []journal.Record

// Len returns the number of days in p.
func (p Period) Len() int { return len(p) }

// Start returns the first day of p.
func (p Period) Start() journal.Day { return p[0].Day }

// End returns the last day of p.
func (p Period) End() journal.Day { return p[len(p)-1].Day }

// Days returns the days of p in order.
func (p Period) Days() []journal.Day { return journal.Days(p) }

// Average returns the mean rating of field across p.
func (p Period) Average(field journal.Field) float64 {
	if len(p) == 0 {
		return 0
	}
	total := 0
	for _, r := range p {
		total += int(r.Rating(field))
	}
	return float64(total) / float64(len(p))
}

// DetectPeriods evaluates d's inner query, splits the matches into runs of
// consecutive days, and returns the runs whose length compares true to
// d.Days under d.Comparison, in chronological order.
//
// Any missing day ends a run, whether or not a record exists for it.
// Days of zero or below are compared literally.
func DetectPeriods(d *query.Duration, records []journal.Record) []Period {
	if d == nil {
		return nil
	}

	var out []Period
	for _, p := range consecutiveRuns(Evaluate(d.Query, records)) {
		if d.Comparison.Apply(p.Len(), d.Days) {
			out = append(out, p)
		}
	}
	return out
}

// consecutiveRuns sorts matched by day and splits it wherever the next
// record is not exactly one day after the previous one.
func consecutiveRuns(matched []journal.Record) []Period {
	if len(matched) == 0 {
		return nil
	}

	sorted := journal.SortByDay(matched)
	var runs []Period
	current := Period{sorted[0]}

	for _, r := range sorted[1:] {
		if current.End().Next() == r.Day {
			current = append(current, r)
			continue
		}
		runs = append(runs, current)
		current = Period{r}
	}
	return append(runs, current)
}
