// Package store provides SQLite-backed storage for the journal and the
// user's query list.
//
// The store is a collaborator of the query engine, not part of it: the
// engine receives records and query trees as plain values and never sees
// the database.
//
// # Tables
//
//   - records: one row per day, keyed by "YYYY-MM-DD", ratings as JSON
//   - queries: the ordered query list, one row per entry, each tree stored
//     with the query package's JSON codec and its content hash
//
// # Determinism
//
// Reads are ordered: records by day ascending, queries by position
// ascending. Day strings are zero-padded, so lexical order is calendar
// order.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//
// Two drivers are supported: "sqlite3" (github.com/mattn/go-sqlite3, cgo)
// and "sqlite" (modernc.org/sqlite, pure Go).
package store
