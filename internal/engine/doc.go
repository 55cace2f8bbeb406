// Package engine evaluates query trees against a journal.
//
// Evaluate selects matching records for a boolean query. DetectPeriods
// groups matches of a Duration's inner query into runs of consecutive days
// and keeps the runs whose length satisfies the Duration. Run dispatches a
// list entry to whichever of the two applies.
//
// # Determinism
//
// All functions are pure: the input slice is never modified and the same
// tree over the same records yields the same output in the same order.
// Records are matched and de-duplicated by journal.Day, never by identity,
// because And and Or evaluate each child independently.
//
// Nothing is cached between calls. Record sets are bounded by years of
// daily entries, so each call re-evaluates from scratch.
package engine
