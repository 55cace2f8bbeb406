package compiler

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/token"

	"github.com/roach88/dayquery/internal/journal"
	"github.com/roach88/dayquery/internal/query"
)

// Definition is one named query compiled from CUE.
type Definition struct {
	Name  string
	Query query.Queryable
	Pos   token.Pos
}

// CompileDefinitions compiles every field of the top-level "query" struct
// in source order. A value without a "query" struct yields no definitions.
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(src)
//	defs, err := CompileDefinitions(v)
func CompileDefinitions(v cue.Value) ([]Definition, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	queriesVal := v.LookupPath(cue.ParsePath("query"))
	if !queriesVal.Exists() {
		return nil, nil
	}

	iter, err := queriesVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var defs []Definition
	for iter.Next() {
		name := iter.Selector().Unquoted()
		q, err := CompileQueryable(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("query %q: %w", name, err)
		}
		defs = append(defs, Definition{Name: name, Query: q, Pos: iter.Value().Pos()})
	}
	return defs, nil
}

// CompileQueryable parses a CUE value into a list entry: a boolean query
// or a Duration wrapping one.
func CompileQueryable(v cue.Value) (query.Queryable, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	kind, err := parseKind(v)
	if err != nil {
		return nil, err
	}

	if kind != query.KindDuration {
		return compileQuery(v, kind)
	}

	cmp, err := parseComparison(v)
	if err != nil {
		return nil, err
	}
	days, err := requireInt(v, "days")
	if err != nil {
		return nil, err
	}
	if days < 1 {
		return nil, &CompileError{
			Field:   "days",
			Message: fmt.Sprintf("days must be at least 1, got %d", days),
			Pos:     v.LookupPath(cue.ParsePath("days")).Pos(),
		}
	}
	inner, err := compileChild(v, "query")
	if err != nil {
		return nil, err
	}
	return query.NewDurationOf(cmp, days, inner), nil
}

// compileChild compiles the boolean query stored under label.
func compileChild(v cue.Value, label string) (query.Query, error) {
	child := v.LookupPath(cue.ParsePath(label))
	if !child.Exists() {
		return nil, &CompileError{
			Field:   label,
			Message: fmt.Sprintf("%s is required", label),
			Pos:     v.Pos(),
		}
	}
	kind, err := parseKind(child)
	if err != nil {
		return nil, err
	}
	if kind == query.KindDuration {
		return nil, &CompileError{
			Field:   label,
			Message: "Duration can only appear at the top of a query",
			Pos:     child.Pos(),
		}
	}
	return compileQuery(child, kind)
}

func compileQuery(v cue.Value, kind query.Kind) (query.Query, error) {
	switch kind {
	case query.KindFilter:
		return compileFilter(v)
	case query.KindAnd, query.KindOr:
		left, err := compileChild(v, "left")
		if err != nil {
			return nil, err
		}
		right, err := compileChild(v, "right")
		if err != nil {
			return nil, err
		}
		if kind == query.KindAnd {
			return query.NewAnd(left, right), nil
		}
		return query.NewOr(left, right), nil
	case query.KindNot:
		inner, err := compileChild(v, "query")
		if err != nil {
			return nil, err
		}
		return query.NewNot(inner), nil
	default:
		return nil, &CompileError{
			Field:   "kind",
			Message: fmt.Sprintf("unsupported kind %q", kind),
			Pos:     v.Pos(),
		}
	}
}

func compileFilter(v cue.Value) (*query.Filter, error) {
	cmp, err := parseComparison(v)
	if err != nil {
		return nil, err
	}

	fieldName, err := requireString(v, "field")
	if err != nil {
		return nil, err
	}
	field, err := journal.ParseField(fieldName)
	if err != nil {
		return nil, &CompileError{
			Field:   "field",
			Message: err.Error(),
			Pos:     v.LookupPath(cue.ParsePath("field")).Pos(),
		}
	}

	n, err := requireInt(v, "value")
	if err != nil {
		return nil, err
	}
	value, err := journal.ParseRating(n)
	if err != nil {
		return nil, &CompileError{
			Field:   "value",
			Message: err.Error(),
			Pos:     v.LookupPath(cue.ParsePath("value")).Pos(),
		}
	}

	return query.NewFilterOf(field, cmp, value), nil
}

func parseKind(v cue.Value) (query.Kind, error) {
	s, err := requireString(v, "kind")
	if err != nil {
		return "", err
	}
	kind, err := query.ParseKind(s)
	if err != nil {
		return "", &CompileError{
			Field:   "kind",
			Message: err.Error(),
			Pos:     v.LookupPath(cue.ParsePath("kind")).Pos(),
		}
	}
	return kind, nil
}

func parseComparison(v cue.Value) (query.Comparison, error) {
	s, err := requireString(v, "comparison")
	if err != nil {
		return 0, err
	}
	cmp, err := query.ParseComparison(s)
	if err != nil {
		return 0, &CompileError{
			Field:   "comparison",
			Message: err.Error(),
			Pos:     v.LookupPath(cue.ParsePath("comparison")).Pos(),
		}
	}
	return cmp, nil
}

func requireString(v cue.Value, label string) (string, error) {
	field := v.LookupPath(cue.ParsePath(label))
	if !field.Exists() {
		return "", &CompileError{
			Field:   label,
			Message: fmt.Sprintf("%s is required", label),
			Pos:     v.Pos(),
		}
	}
	s, err := field.String()
	if err != nil {
		return "", formatCUEError(err)
	}
	return s, nil
}

func requireInt(v cue.Value, label string) (int, error) {
	field := v.LookupPath(cue.ParsePath(label))
	if !field.Exists() {
		return 0, &CompileError{
			Field:   label,
			Message: fmt.Sprintf("%s is required", label),
			Pos:     v.Pos(),
		}
	}
	n, err := field.Int64()
	if err != nil {
		return 0, formatCUEError(err)
	}
	return int(n), nil
}
