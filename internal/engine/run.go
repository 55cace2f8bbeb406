package engine

import (
	"github.com/roach88/dayquery/internal/journal"
	"github.com/roach88/dayquery/internal/query"
)

// Result is the outcome of running one list entry. Exactly one of Matches
// and Periods is meaningful, according to Temporal.
type Result struct {
	Query    query.Queryable
	Temporal bool
	Matches  []journal.Record
	Periods  []Period
}

// Days returns every matched day: the matches of a boolean query, or the
// days of all periods of a Duration in order.
func (r Result) Days() []journal.Day {
	if !r.Temporal {
		return journal.Days(r.Matches)
	}
	var days []journal.Day
	for _, p := range r.Periods {
		days = append(days, p.Days()...)
	}
	return days
}

// Run evaluates q as a boolean query or as a Duration.
func Run(q query.Queryable, records []journal.Record) Result {
	switch n := q.(type) {
	case *query.Duration:
		return Result{Query: q, Temporal: true, Periods: DetectPeriods(n, records)}
	case query.Query:
		return Result{Query: q, Matches: Evaluate(n, records)}
	}
	return Result{Query: q}
}

// RunAll runs every entry of list in order.
func RunAll(list []query.Queryable, records []journal.Record) []Result {
	results := make([]Result, len(list))
	for i, q := range list {
		results[i] = Run(q, records)
	}
	return results
}

// Summary aggregates a set of periods.
type Summary struct {
	Count     int
	TotalDays int
	Longest   int
}

// Summarize counts periods, the days they cover, and the longest run.
func Summarize(periods []Period) Summary {
	s := Summary{Count: len(periods)}
	for _, p := range periods {
		s.TotalDays += p.Len()
		if p.Len() > s.Longest {
			s.Longest = p.Len()
		}
	}
	return s
}
