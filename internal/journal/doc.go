// Package journal defines the day-indexed record set that queries run against.
//
// A Record holds one calendar day's ratings: every Field maps to a Rating in
// the closed range 1..4. Records are keyed by Day, which is a comparable
// value type, so sets of days are plain Go maps keyed by Day.
//
// # Invariants
//
//   - At most one Record per Day in a record set (see ValidateSet).
//   - Every Field is present on every Record (see Record.Validate).
//
// The package is pure data: nothing here performs I/O. The store package
// persists records and the cli package imports them from YAML.
package journal
