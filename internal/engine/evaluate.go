package engine

import (
	"github.com/roach88/dayquery/internal/journal"
	"github.com/roach88/dayquery/internal/query"
)

// Evaluate returns the records matched by q, as an order-preserving
// selection from records:
//
//   - Filter: records whose rating for the field compares true to the value.
//   - And: the left result, restricted to days also in the right result.
//   - Or: the left result, then right-result records for days not yet seen.
//   - Not: the input records whose day is absent from the child's result.
//
// A nil query matches nothing.
func Evaluate(q query.Query, records []journal.Record) []journal.Record {
	switch n := q.(type) {
	case *query.Filter:
		if n == nil {
			return nil
		}
		return evaluateFilter(n, records)

	case *query.And:
		if n == nil {
			return nil
		}
		left := Evaluate(n.Left, records)
		right := journal.DaySet(Evaluate(n.Right, records))
		return keep(left, func(r journal.Record) bool {
			_, ok := right[r.Day]
			return ok
		})

	case *query.Or:
		if n == nil {
			return nil
		}
		left := Evaluate(n.Left, records)
		right := Evaluate(n.Right, records)
		seen := journal.DaySet(left)
		merged := make([]journal.Record, len(left), len(left)+len(right))
		copy(merged, left)
		for _, r := range right {
			if _, dup := seen[r.Day]; dup {
				continue
			}
			seen[r.Day] = struct{}{}
			merged = append(merged, r)
		}
		return merged

	case *query.Not:
		if n == nil {
			return nil
		}
		excluded := journal.DaySet(Evaluate(n.Query, records))
		return keep(records, func(r journal.Record) bool {
			_, ok := excluded[r.Day]
			return !ok
		})
	}

	return nil
}

func evaluateFilter(f *query.Filter, records []journal.Record) []journal.Record {
	return keep(records, func(r journal.Record) bool {
		return f.Comparison.Apply(int(r.Rating(f.Field)), int(f.Value))
	})
}

// keep returns a new slice holding the records for which pred is true.
func keep(records []journal.Record, pred func(journal.Record) bool) []journal.Record {
	out := make([]journal.Record, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}
