package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/dayquery/internal/engine"
	"github.com/roach88/dayquery/internal/journal"
	"github.com/roach88/dayquery/internal/query"
	"github.com/roach88/dayquery/internal/querylist"
)

// ExpectationError is reported when a step's expectation fails.
type ExpectationError struct {
	Step     int
	Type     string
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *ExpectationError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "steps[%d]: expectation failed: %s\n", e.Step, e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	return buf.String()
}

// checkExpect evaluates every part of exp and returns one message per
// failure.
func checkExpect(step int, exp Expect, before, after querylist.List, results []engine.Result) []string {
	var errs []string
	fail := func(typ, expected, actual string) {
		errs = append(errs, (&ExpectationError{
			Step: step, Type: typ, Expected: expected, Actual: actual,
		}).Error())
	}

	if exp.List != nil {
		got := make([]string, len(after))
		for i, q := range after {
			got[i] = query.String(q)
		}
		if !slices.Equal(exp.List, got) {
			fail("list", fmt.Sprintf("%q", exp.List), fmt.Sprintf("%q", got))
		}
	}

	for _, index := range sortedKeys(exp.Matches) {
		want := exp.Matches[index]
		if index >= len(results) {
			fail("matches", fmt.Sprintf("entry %d", index), fmt.Sprintf("list has %d entries", len(results)))
			continue
		}
		r := results[index]
		if r.Temporal {
			fail("matches", fmt.Sprintf("entry %d to be a boolean query", index), query.String(r.Query))
			continue
		}
		if got := journal.Days(r.Matches); !slices.Equal(want, got) {
			fail("matches", fmt.Sprintf("entry %d days %v", index, want), fmt.Sprintf("%v", got))
		}
	}

	for _, index := range sortedKeys(exp.Periods) {
		want := exp.Periods[index]
		if index >= len(results) {
			fail("periods", fmt.Sprintf("entry %d", index), fmt.Sprintf("list has %d entries", len(results)))
			continue
		}
		r := results[index]
		if !r.Temporal {
			fail("periods", fmt.Sprintf("entry %d to be a Duration", index), query.String(r.Query))
			continue
		}
		got := formatPeriods(r.Periods)
		if !slices.Equal(want, got) {
			fail("periods", fmt.Sprintf("entry %d %q", index, want), fmt.Sprintf("%q", got))
		}
	}

	if exp.Unchanged && !sameEntries(before, after) {
		fail("unchanged", "the same tree instances as before the step", "a different list")
	}

	return errs
}

// sameEntries reports whether a and b hold the identical tree values.
func sameEntries(a, b querylist.List) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
