package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/dayquery/internal/query"
)

// Entry is one stored query list slot.
type Entry struct {
	ID       string
	Position int
	Hash     string
	Query    query.Queryable
}

// SaveQueries replaces the stored query list with list.
//
// Entry IDs are stable across saves: an entry whose tree hash matches a
// previously stored entry keeps that entry's ID. New trees get a fresh ID
// from the store's IDGenerator.
func (s *Store) SaveQueries(ctx context.Context, list []query.Queryable) error {
	for i, q := range list {
		if err := query.Validate(q); err != nil {
			return fmt.Errorf("save queries: entry %d: %w", i, err)
		}
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		previous, err := idsByHash(ctx, tx)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM queries`); err != nil {
			return fmt.Errorf("save queries: clear: %w", err)
		}

		for i, q := range list {
			body, err := marshalQuery(q)
			if err != nil {
				return fmt.Errorf("save queries: entry %d: %w", i, err)
			}
			hash := query.Hash(q)

			var id string
			if reuse := previous[hash]; len(reuse) > 0 {
				id, previous[hash] = reuse[0], reuse[1:]
			} else {
				id = s.ids.Generate()
			}

			if _, err := tx.ExecContext(ctx, `
				INSERT INTO queries (id, position, body, hash) VALUES (?, ?, ?, ?)
			`, id, i, body, hash); err != nil {
				return fmt.Errorf("save queries: entry %d: %w", i, err)
			}
		}
		return nil
	})
}

// idsByHash returns stored entry IDs grouped by hash, in position order.
func idsByHash(ctx context.Context, tx *sql.Tx) (map[string][]string, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id, hash FROM queries ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("query entry ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[string][]string)
	for rows.Next() {
		var id, hash string
		if err := rows.Scan(&id, &hash); err != nil {
			return nil, fmt.Errorf("scan entry id: %w", err)
		}
		ids[hash] = append(ids[hash], id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entry ids: %w", err)
	}
	return ids, nil
}

// QueryEntries returns the stored query list with IDs, ordered by position.
//
// Returns an empty slice (not nil) when no queries are stored.
func (s *Store) QueryEntries(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, position, body, hash FROM queries ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var (
			e    Entry
			body string
		)
		if err := rows.Scan(&e.ID, &e.Position, &body, &e.Hash); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.Query, err = unmarshalQuery(body)
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", e.ID, err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

// LoadQueries returns the stored query list in order.
func (s *Store) LoadQueries(ctx context.Context) ([]query.Queryable, error) {
	entries, err := s.QueryEntries(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]query.Queryable, len(entries))
	for i, e := range entries {
		list[i] = e.Query
	}
	return list, nil
}
