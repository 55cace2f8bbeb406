package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/dayquery/internal/journal"
	"github.com/roach88/dayquery/internal/query"
	"github.com/roach88/dayquery/internal/testutil"
)

var anxious = query.NewFilterOf(journal.Anxiety, query.MoreThan, 1)

func TestDetectPeriods_FiveConsecutiveDays(t *testing.T) {
	records := testutil.Series(testutil.Day(t, "2024-05-01"), journal.Anxiety, 3, 3, 3, 3, 3)

	got := DetectPeriods(query.NewDurationOf(query.MoreThan, 3, anxious), records)

	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].Len())
	assert.Equal(t, testutil.Day(t, "2024-05-01"), got[0].Start())
	assert.Equal(t, testutil.Day(t, "2024-05-05"), got[0].End())
}

func TestDetectPeriods_BrokenRunSplits(t *testing.T) {
	records := testutil.Series(testutil.Day(t, "2024-05-01"), journal.Anxiety, 3, 3, 1, 3, 3)

	assert.Empty(t, DetectPeriods(query.NewDurationOf(query.MoreThan, 3, anxious), records))

	got := DetectPeriods(query.NewDurationOf(query.EqualTo, 2, anxious), records)
	require.Len(t, got, 2)
	assert.Equal(t, days(t, "2024-05-01", "2024-05-02"), got[0].Days())
	assert.Equal(t, days(t, "2024-05-04", "2024-05-05"), got[1].Days())
}

func TestDetectPeriods_MissingDayEndsRun(t *testing.T) {
	records := testutil.Series(testutil.Day(t, "2024-05-01"), journal.Anxiety, 3, 3, 3, 3)
	records = testutil.Without(records, testutil.Day(t, "2024-05-03"))

	got := DetectPeriods(query.NewDurationOf(query.LessThan, 3, anxious), records)

	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].Len())
	assert.Equal(t, 1, got[1].Len())
}

func TestDetectPeriods_SortsUnorderedInput(t *testing.T) {
	records := testutil.Series(testutil.Day(t, "2024-12-30"), journal.Anxiety, 2, 2, 2, 1, 2)
	shuffled := []journal.Record{records[4], records[2], records[0], records[3], records[1]}

	got := DetectPeriods(query.NewDurationOf(query.MoreThan, 0, anxious), shuffled)

	require.Len(t, got, 2)
	assert.Equal(t, days(t, "2024-12-30", "2024-12-31", "2025-01-01"), got[0].Days())
	assert.Equal(t, days(t, "2025-01-03"), got[1].Days())
}

func TestDetectPeriods_SingleDayPeriod(t *testing.T) {
	records := testutil.Series(testutil.Day(t, "2024-01-01"), journal.Anxiety, 1, 4, 1)

	got := DetectPeriods(query.NewDurationOf(query.EqualTo, 1, anxious), records)

	require.Len(t, got, 1)
	assert.Equal(t, days(t, "2024-01-02"), got[0].Days())
}

func TestDetectPeriods_NoMatches(t *testing.T) {
	records := testutil.Series(testutil.Day(t, "2024-01-01"), journal.Anxiety, 1, 1, 1)

	assert.Empty(t, DetectPeriods(query.NewDurationOf(query.LessThan, 10, anxious), records))
	assert.Empty(t, DetectPeriods(query.NewDurationOf(query.LessThan, 10, anxious), nil))
	assert.Empty(t, DetectPeriods(nil, records))
}

func TestDetectPeriods_NonPositiveDaysComparedLiterally(t *testing.T) {
	records := testutil.Series(testutil.Day(t, "2024-01-01"), journal.Anxiety, 2, 1, 2)

	assert.Len(t, DetectPeriods(query.NewDurationOf(query.MoreThan, -5, anxious), records), 2)
	assert.Empty(t, DetectPeriods(query.NewDurationOf(query.EqualTo, 0, anxious), records))
	assert.Empty(t, DetectPeriods(query.NewDurationOf(query.LessThan, 0, anxious), records))
}

func TestPeriod_Average(t *testing.T) {
	records := testutil.Series(testutil.Day(t, "2024-01-01"), journal.Anxiety, 2, 3, 4)
	p := Period(records)

	assert.InDelta(t, 3.0, p.Average(journal.Anxiety), 1e-9)
	assert.InDelta(t, 1.0, p.Average(journal.Elevation), 1e-9)
	assert.Zero(t, Period(nil).Average(journal.Anxiety))
}

func TestRunAndSummarize(t *testing.T) {
	records := testutil.Series(testutil.Day(t, "2024-01-01"), journal.Anxiety, 2, 2, 1, 2, 2, 2)
	list := []query.Queryable{
		anxious,
		query.NewDurationOf(query.MoreThan, 0, anxious),
	}

	results := RunAll(list, records)
	require.Len(t, results, 2)

	assert.False(t, results[0].Temporal)
	assert.Len(t, results[0].Matches, 5)

	assert.True(t, results[1].Temporal)
	assert.Len(t, results[1].Days(), 5)
	assert.Equal(t, Summary{Count: 2, TotalDays: 5, Longest: 3}, Summarize(results[1].Periods))
}
