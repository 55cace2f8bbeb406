package compiler

import (
	"fmt"
	"strings"

	"github.com/roach88/dayquery/internal/journal"
	"github.com/roach88/dayquery/internal/query"
)

// Validation error codes (E100-E199)
const (
	ErrInvalidTree       = "E100" // tree fails query.Validate
	ErrNameEmpty         = "E101" // definition name is blank
	ErrDuplicateQuery    = "E102" // two names define the same tree
	ErrUnsatisfiable     = "E103" // a comparison no rating or day count can meet
)

// ValidationError represents a definition validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Line    int    `json:"line,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] line %d: %s: %s", e.Code, e.Line, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate checks compiled definitions. Returns all errors found (does
// not fail-fast).
func Validate(defs []Definition) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]string, len(defs))

	for _, def := range defs {
		line := 0
		if def.Pos.IsValid() {
			line = def.Pos.Line()
		}

		if strings.TrimSpace(def.Name) == "" {
			errs = append(errs, ValidationError{
				Field:   "query",
				Message: "definition name must be non-empty",
				Code:    ErrNameEmpty,
				Line:    line,
			})
		}

		if err := query.Validate(def.Query); err != nil {
			errs = append(errs, ValidationError{
				Field:   "query." + def.Name,
				Message: err.Error(),
				Code:    ErrInvalidTree,
				Line:    line,
			})
			continue
		}

		hash := query.Hash(def.Query)
		if first, ok := seen[hash]; ok {
			errs = append(errs, ValidationError{
				Field:   "query." + def.Name,
				Message: fmt.Sprintf("same query as %q", first),
				Code:    ErrDuplicateQuery,
				Line:    line,
			})
		} else {
			seen[hash] = def.Name
		}

		for _, msg := range unsatisfiable(def.Query, nil) {
			errs = append(errs, ValidationError{
				Field:   "query." + def.Name,
				Message: msg,
				Code:    ErrUnsatisfiable,
				Line:    line,
			})
		}
	}

	return errs
}

// unsatisfiable reports comparisons that can never hold. Ratings run 1..4
// and periods are at least one day long.
func unsatisfiable(q query.Queryable, path query.Path) []string {
	var msgs []string
	switch n := q.(type) {
	case *query.Filter:
		lo, hi := journal.Ratings[0], journal.Ratings[len(journal.Ratings)-1]
		if (n.Comparison == query.LessThan && n.Value <= lo) ||
			(n.Comparison == query.MoreThan && n.Value >= hi) {
			msgs = append(msgs, fmt.Sprintf("at %s: %s never matches", path, n))
		}
	case *query.And:
		msgs = append(msgs, unsatisfiable(n.Left, path.Child(query.Left))...)
		msgs = append(msgs, unsatisfiable(n.Right, path.Child(query.Right))...)
	case *query.Or:
		msgs = append(msgs, unsatisfiable(n.Left, path.Child(query.Left))...)
		msgs = append(msgs, unsatisfiable(n.Right, path.Child(query.Right))...)
	case *query.Not:
		msgs = append(msgs, unsatisfiable(n.Query, path.Child(query.DirectChild))...)
	case *query.Duration:
		if n.Comparison == query.LessThan && n.Days <= 1 {
			msgs = append(msgs, fmt.Sprintf("at %s: fewer than %d days never matches", path, n.Days))
		}
		msgs = append(msgs, unsatisfiable(n.Query, path.Child(query.DirectChild))...)
	}
	return msgs
}
