package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/dayquery/internal/journal"
	"github.com/roach88/dayquery/internal/query"
	"github.com/roach88/dayquery/internal/testutil"
)

// fourDays returns D1..D4 with anxiety 1..4 and depression 4..1.
func fourDays(t *testing.T) []journal.Record {
	t.Helper()
	records := testutil.Series(testutil.Day(t, "2024-01-01"), journal.Anxiety, 1, 2, 3, 4)
	for i := range records {
		records[i].Ratings[journal.Depression] = journal.Rating(4 - i)
	}
	return records
}

func days(t *testing.T, ss ...string) []journal.Day {
	t.Helper()
	out := make([]journal.Day, len(ss))
	for i, s := range ss {
		out[i] = testutil.Day(t, s)
	}
	return out
}

func TestEvaluate_Filter(t *testing.T) {
	records := fourDays(t)

	got := Evaluate(query.NewFilterOf(journal.Anxiety, query.MoreThan, 2), records)
	assert.Equal(t, days(t, "2024-01-03", "2024-01-04"), journal.Days(got))

	got = Evaluate(query.NewFilterOf(journal.Anxiety, query.LessThan, 2), records)
	assert.Equal(t, days(t, "2024-01-01"), journal.Days(got))

	got = Evaluate(query.NewFilterOf(journal.Anxiety, query.EqualTo, 2), records)
	assert.Equal(t, days(t, "2024-01-02"), journal.Days(got))
}

func TestEvaluate_FilterPreservesInputOrder(t *testing.T) {
	records := fourDays(t)
	reversed := []journal.Record{records[3], records[0], records[2], records[1]}

	got := Evaluate(query.NewFilterOf(journal.Anxiety, query.MoreThan, 2), reversed)
	assert.Equal(t, days(t, "2024-01-04", "2024-01-03"), journal.Days(got))
}

func TestEvaluate_And(t *testing.T) {
	records := fourDays(t)
	f1 := query.NewFilterOf(journal.Anxiety, query.MoreThan, 1)    // D2 D3 D4
	f2 := query.NewFilterOf(journal.Depression, query.MoreThan, 1) // D1 D2 D3

	got := Evaluate(query.NewAnd(f1, f2), records)
	assert.Equal(t, days(t, "2024-01-02", "2024-01-03"), journal.Days(got))
}

func TestEvaluate_AndKeepsLeftOrder(t *testing.T) {
	records := fourDays(t)
	// left yields D4 D3 by evaluating an Or whose left branch is D4.
	left := query.NewOr(
		query.NewFilterOf(journal.Anxiety, query.EqualTo, 4),
		query.NewFilterOf(journal.Anxiety, query.EqualTo, 3),
	)
	right := query.NewFilterOf(journal.Anxiety, query.MoreThan, 1)

	got := Evaluate(query.NewAnd(left, right), records)
	assert.Equal(t, days(t, "2024-01-04", "2024-01-03"), journal.Days(got))
}

func TestEvaluate_Or(t *testing.T) {
	records := fourDays(t)
	f1 := query.NewFilterOf(journal.Anxiety, query.MoreThan, 2)    // D3 D4
	f2 := query.NewFilterOf(journal.Depression, query.MoreThan, 1) // D1 D2 D3

	got := Evaluate(query.NewOr(f1, f2), records)
	assert.Equal(t, days(t, "2024-01-03", "2024-01-04", "2024-01-01", "2024-01-02"), journal.Days(got))
}

func TestEvaluate_Not(t *testing.T) {
	records := fourDays(t)

	got := Evaluate(query.NewNot(query.NewFilterOf(journal.Anxiety, query.MoreThan, 2)), records)
	assert.Equal(t, days(t, "2024-01-01", "2024-01-02"), journal.Days(got))
}

func TestEvaluate_NotIsComplementByDay(t *testing.T) {
	records := fourDays(t)
	inner := query.NewOr(
		query.NewFilterOf(journal.Anxiety, query.EqualTo, 1),
		query.NewFilterOf(journal.Anxiety, query.EqualTo, 4),
	)

	matched := Evaluate(inner, records)
	complement := Evaluate(query.NewNot(inner), records)

	assert.Len(t, complement, len(records)-len(matched))
	assert.Equal(t, days(t, "2024-01-02", "2024-01-03"), journal.Days(complement))

	doubled := Evaluate(query.NewNot(query.NewNot(inner)), records)
	assert.ElementsMatch(t, journal.Days(matched), journal.Days(doubled))
}

func TestEvaluate_MatchesByDayNotIdentity(t *testing.T) {
	records := fourDays(t)
	// Same days, freshly built values.
	copies := make([]journal.Record, len(records))
	for i, r := range records {
		ratings := make(map[journal.Field]journal.Rating, len(r.Ratings))
		for f, v := range r.Ratings {
			ratings[f] = v
		}
		copies[i] = journal.Record{Day: r.Day, Ratings: ratings}
	}

	left := Evaluate(query.NewFilterOf(journal.Anxiety, query.MoreThan, 1), records)
	right := journal.DaySet(Evaluate(query.NewFilterOf(journal.Anxiety, query.LessThan, 4), copies))

	var shared []journal.Day
	for _, r := range left {
		if _, ok := right[r.Day]; ok {
			shared = append(shared, r.Day)
		}
	}
	assert.Equal(t, days(t, "2024-01-02", "2024-01-03"), shared)
}

func TestEvaluate_EmptyAndNil(t *testing.T) {
	assert.Empty(t, Evaluate(query.NewFilter(), nil))
	assert.Empty(t, Evaluate(nil, fourDays(t)))
	assert.Empty(t, Evaluate((*query.Filter)(nil), fourDays(t)))
}

func TestEvaluate_DoesNotModifyInput(t *testing.T) {
	records := fourDays(t)
	before := journal.Days(records)

	_ = Evaluate(query.NewOr(query.NewNot(query.NewFilter()), query.NewFilter()), records)

	assert.Equal(t, before, journal.Days(records))
}

func TestEvaluate_Deterministic(t *testing.T) {
	records := fourDays(t)
	q := query.NewOr(
		query.NewAnd(query.NewFilterOf(journal.Anxiety, query.MoreThan, 1), query.NewNot(query.NewFilter())),
		query.NewFilterOf(journal.Depression, query.EqualTo, 4),
	)

	first := Evaluate(q, records)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Evaluate(q, records))
	}
}
