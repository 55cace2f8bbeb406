package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/dayquery/internal/journal"
)

// PutRecords validates records and upserts them by day. Existing days are
// overwritten. The whole batch is written in one transaction, so a bad
// record leaves the store unchanged.
func (s *Store) PutRecords(ctx context.Context, records []journal.Record) error {
	if err := journal.ValidateSet(records); err != nil {
		return fmt.Errorf("put records: %w", err)
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO records (day, ratings) VALUES (?, ?)
			ON CONFLICT(day) DO UPDATE SET ratings = excluded.ratings
		`)
		if err != nil {
			return fmt.Errorf("put records: %w", err)
		}
		defer stmt.Close()

		for _, r := range records {
			ratings, err := marshalRatings(r.Ratings)
			if err != nil {
				return fmt.Errorf("put records: %w", err)
			}
			if _, err := stmt.ExecContext(ctx, r.Day.String(), ratings); err != nil {
				return fmt.Errorf("put record %s: %w", r.Day, err)
			}
		}
		return nil
	})
}

// Records returns every stored record ordered by day ascending.
//
// Returns an empty slice (not nil) when the journal is empty.
func (s *Store) Records(ctx context.Context) ([]journal.Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT day, ratings FROM records ORDER BY day ASC`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := []journal.Record{}
	for rows.Next() {
		var dayText, ratingsText string
		if err := rows.Scan(&dayText, &ratingsText); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		day, err := journal.ParseDay(dayText)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		ratings, err := unmarshalRatings(ratingsText)
		if err != nil {
			return nil, fmt.Errorf("scan record %s: %w", day, err)
		}
		records = append(records, journal.Record{Day: day, Ratings: ratings})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// DeleteRecord removes the record for day. Deleting a missing day is not
// an error.
func (s *Store) DeleteRecord(ctx context.Context, day journal.Day) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE day = ?`, day.String()); err != nil {
		return fmt.Errorf("delete record %s: %w", day, err)
	}
	return nil
}
