// Package querylist manages the ordered list of top-level queries a user
// keeps. Entries are addressed by index; nodes inside an entry by a
// query.Path.
//
// Every function returns a new slice and leaves its input untouched.
// Indices come from the list the caller last rendered, so an out-of-range
// index is treated as a no-op rather than an error.
package querylist

import (
	"github.com/roach88/dayquery/internal/query"
)

// List is the ordered sequence of top-level queries.
type List []query.Queryable

// UpdateAt returns a copy of list with entry index replaced by the result
// of query.Mutate(path, edit, list[index]).
func UpdateAt(index int, path query.Path, edit query.Edit, list List) List {
	out := clone(list)
	if index < 0 || index >= len(out) {
		return out
	}
	out[index] = query.Mutate(path, edit, out[index])
	return out
}

// InsertFilterDefault returns list with query.NewFilter() prepended.
func InsertFilterDefault(list List) List {
	return prepend(query.NewFilter(), list)
}

// InsertDurationDefault returns list with query.NewDuration() prepended.
func InsertDurationDefault(list List) List {
	return prepend(query.NewDuration(), list)
}

// RemoveAt returns list without entry index.
func RemoveAt(index int, list List) List {
	if index < 0 || index >= len(list) {
		return clone(list)
	}
	out := make(List, 0, len(list)-1)
	out = append(out, list[:index]...)
	return append(out, list[index+1:]...)
}

// Defaults returns the built-in query list.
func Defaults() List {
	builtins := query.Builtins()
	out := make(List, len(builtins))
	for i, b := range builtins {
		out[i] = b.Query
	}
	return out
}

// Reset discards list and returns a fresh copy of the defaults.
func Reset(List) List {
	return Defaults()
}

func prepend(q query.Queryable, list List) List {
	out := make(List, 0, len(list)+1)
	out = append(out, q)
	return append(out, list...)
}

func clone(list List) List {
	if list == nil {
		return nil
	}
	out := make(List, len(list))
	copy(out, list)
	return out
}
