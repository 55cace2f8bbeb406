// Package harness runs scripted query-list scenarios against a journal.
//
// A scenario seeds records, then applies a sequence of list operations
// (insert, edit, remove, reset). After every step the harness evaluates
// the whole list and appends a trace event, so a scenario's trace shows
// how each edit changed both the trees and their matches.
//
// # Scenario Format
//
//	name: hypomania_run
//	description: "Duration over elevated days finds the long run"
//	start: empty            # or "defaults"
//	records:
//	  - day: 2024-03-01
//	    ratings: {elevation: 3}   # unset fields default to 1
//	  - day: 2024-03-02
//	steps:
//	  - op: insert_duration
//	  - op: edit
//	    index: 0
//	    path: [child]
//	    edit: field
//	    arg: elevation
//	    expect:
//	      list: ["EqualTo 1 days of elevation EqualTo 1"]
//	      periods: {0: ["2024-03-02..2024-03-02"]}
//
// # Operations
//
//   - add: append the tree given in query (wire form)
//   - insert_filter, insert_duration: prepend a default entry
//   - edit: apply edit/arg at index and path
//   - remove: drop the entry at index
//   - reset: replace the list with the built-in defaults
//
// # Expectations
//
//   - list: rendered form of every entry, in order
//   - matches: days matched by boolean entries, keyed by index
//   - periods: "start..end" runs for Duration entries, keyed by index
//   - unchanged: every entry is the same tree instance as before the step
//
// # Determinism
//
// Each run uses a fresh in-memory store with sequential entry IDs. The
// list is saved and reloaded after every step, so traces also cover the
// storage codec.
package harness
