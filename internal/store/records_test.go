package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/dayquery/internal/journal"
	"github.com/roach88/dayquery/internal/testutil"
)

func TestRecords_Empty(t *testing.T) {
	s := createTestStore(t)

	records, err := s.Records(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestPutRecords_RoundTrip(t *testing.T) {
	for _, driver := range []string{DriverCGO, DriverPure} {
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()
			s := createTestStore(t, WithDriver(driver))

			start := testutil.Day(t, "2024-03-01")
			in := testutil.Series(start, journal.Anxiety, 1, 3, 4)
			// Insert out of order; Records sorts by day.
			require.NoError(t, s.PutRecords(ctx, []journal.Record{in[2], in[0], in[1]}))

			out, err := s.Records(ctx)
			require.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}
}

func TestPutRecords_UpsertsByDay(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	day := testutil.Day(t, "2024-03-01")

	require.NoError(t, s.PutRecords(ctx, []journal.Record{testutil.Calm(day)}))
	updated := journal.NewRecord(day, 4, 3, 2, 1, 1)
	require.NoError(t, s.PutRecords(ctx, []journal.Record{updated}))

	out, err := s.Records(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, journal.Rating(4), out[0].Rating(journal.Anxiety))
	assert.Equal(t, journal.Rating(3), out[0].Rating(journal.Depression))
}

func TestPutRecords_InvalidBatchIsAtomic(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	day := testutil.Day(t, "2024-03-01")

	bad := testutil.Calm(day.Next())
	bad.Ratings[journal.Anxiety] = 9

	err := s.PutRecords(ctx, []journal.Record{testutil.Calm(day), bad})
	require.Error(t, err)

	out, err := s.Records(ctx)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestPutRecords_RejectsDuplicateDays(t *testing.T) {
	s := createTestStore(t)
	day := testutil.Day(t, "2024-03-01")

	err := s.PutRecords(context.Background(), []journal.Record{testutil.Calm(day), testutil.Calm(day)})
	assert.Error(t, err)
}

func TestDeleteRecord(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	start := testutil.Day(t, "2024-03-01")
	in := testutil.Series(start, journal.Anxiety, 1, 2)
	require.NoError(t, s.PutRecords(ctx, in))

	require.NoError(t, s.DeleteRecord(ctx, start))
	require.NoError(t, s.DeleteRecord(ctx, testutil.Day(t, "1999-01-01")))

	out, err := s.Records(ctx)
	require.NoError(t, err)
	assert.Equal(t, in[1:], out)
}
