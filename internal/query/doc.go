// Package query defines the filter tree that selects days from a journal,
// and the path-addressed edits that reshape it.
//
// # Node kinds
//
// Queryable is a sealed interface: only types in this package implement it.
// The marker method pattern gives exhaustive type switches in the evaluator
// and in the edit table below.
//
//	Filter    leaf: <field> <comparison> <rating>
//	And, Or   binary: Left, Right
//	Not       unary: Query
//	Duration  temporal wrapper: periods of consecutive matching days
//
// Query is the boolean subset {Filter, And, Or, Not}. Duration wraps a Query
// and is only valid at the top of a tree.
//
// # Ownership
//
// Every node is reachable from exactly one parent slot. No sub-tree is
// shared and there are no cycles, which is what makes a Path (a list of
// Left/Right/DirectChild steps) a well-defined address. Validate enforces
// this for trees that arrive from outside (decoded JSON, CUE definitions).
//
// # Editing
//
// Trees are treated as immutable. Mutate locates the node at a Path, applies
// an Edit to it, and rebuilds the chain of ancestors up to a new root. The
// tree passed in is never modified, so callers must use the returned root.
//
//	node kind   edit                         result
//	---------   ----                         ------
//	Filter      SetField/SetValue/SetComp.   one attribute replaced
//	And, Or     Restructure(And|Or)          same children, kind changed
//	And, Or     Restructure(Not)             Not(Left); Right discarded
//	Not         Restructure(And|Or)          child duplicated into both slots
//	Duration    SetComparison, SetDuration   one attribute replaced
//
// Every other combination leaves the node unchanged. An invalid path is
// logged and leaves the whole tree unchanged.
package query
