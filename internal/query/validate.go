package query

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError lists every problem found in a tree.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid query: " + strings.Join(e.Problems, "; ")
}

// Validate checks that q is a well-formed, strictly nested tree: no nil
// children, known comparisons, fields and ratings, and no node reachable
// through two parent slots.
//
// Validate is a pure function with no side effects.
func Validate(q Queryable) error {
	v := &validator{seen: make(map[Queryable]struct{})}
	v.validate(q, nil)
	if len(v.problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: v.problems}
}

// IsValidationError reports whether err carries a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// validator accumulates problems during traversal.
type validator struct {
	problems []string
	seen     map[Queryable]struct{}
}

func (v *validator) addProblem(path Path, format string, args ...any) {
	v.problems = append(v.problems, fmt.Sprintf("at %s: ", path)+fmt.Sprintf(format, args...))
}

func (v *validator) validate(q Queryable, path Path) {
	if isNil(q) {
		v.addProblem(path, "missing node")
		return
	}
	if _, dup := v.seen[q]; dup {
		v.addProblem(path, "%s node is shared with another slot", q.Kind())
		return
	}
	v.seen[q] = struct{}{}

	switch n := q.(type) {
	case *Filter:
		if !n.Comparison.Valid() {
			v.addProblem(path, "unknown comparison %d", int(n.Comparison))
		}
		if !n.Field.Valid() {
			v.addProblem(path, "unknown field %q", n.Field)
		}
		if !n.Value.Valid() {
			v.addProblem(path, "rating %d out of range 1..4", int(n.Value))
		}
	case *And:
		v.validate(n.Left, path.Child(Left))
		v.validate(n.Right, path.Child(Right))
	case *Or:
		v.validate(n.Left, path.Child(Left))
		v.validate(n.Right, path.Child(Right))
	case *Not:
		v.validate(n.Query, path.Child(DirectChild))
	case *Duration:
		if len(path) > 0 {
			v.addProblem(path, "%v", ErrNotBoolean)
		}
		if !n.Comparison.Valid() {
			v.addProblem(path, "unknown comparison %d", int(n.Comparison))
		}
		v.validate(n.Query, path.Child(DirectChild))
	}
}
