package query

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/roach88/dayquery/internal/journal"
)

// Edit is one atomic change applied to a located node.
//
// This is a sealed interface - only types in this package implement it.
type Edit interface {
	fmt.Stringer
	editNode()
}

// SetField replaces a Filter's field.
type SetField struct{ Field journal.Field }

// SetValue replaces a Filter's rating.
type SetValue struct{ Value journal.Rating }

// SetComparison replaces the comparison of a Filter or Duration.
type SetComparison struct{ Comparison Comparison }

// SetDuration replaces a Duration's day count. Any integer is accepted.
type SetDuration struct{ Days int }

// Restructure changes an And, Or or Not node into another of those kinds.
type Restructure struct{ Kind Kind }

func (SetField) editNode()      {}
func (SetValue) editNode()      {}
func (SetComparison) editNode() {}
func (SetDuration) editNode()   {}
func (Restructure) editNode()   {}

func (e SetField) String() string      { return "SetField(" + string(e.Field) + ")" }
func (e SetValue) String() string      { return fmt.Sprintf("SetValue(%d)", int(e.Value)) }
func (e SetComparison) String() string { return "SetComparison(" + e.Comparison.String() + ")" }
func (e SetDuration) String() string   { return fmt.Sprintf("SetDuration(%d)", e.Days) }
func (e Restructure) String() string   { return "Restructure(" + string(e.Kind) + ")" }

// ParseEdit builds an Edit from a name and a textual argument, as typed on
// the command line: "field anxiety", "value 3", "comparison MoreThan",
// "days 4", "combine Or".
func ParseEdit(name, arg string) (Edit, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "field", "prompt":
		f, err := journal.ParseField(arg)
		if err != nil {
			return nil, err
		}
		return SetField{Field: f}, nil
	case "value", "rating":
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return nil, fmt.Errorf("value: %w", err)
		}
		r, err := journal.ParseRating(n)
		if err != nil {
			return nil, err
		}
		return SetValue{Value: r}, nil
	case "comparison":
		c, err := ParseComparison(arg)
		if err != nil {
			return nil, err
		}
		return SetComparison{Comparison: c}, nil
	case "days", "duration":
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return nil, fmt.Errorf("days: %w", err)
		}
		return SetDuration{Days: n}, nil
	case "combine", "restructure":
		k, err := ParseKind(strings.TrimSpace(arg))
		if err != nil {
			return nil, err
		}
		if !k.IsCombine() {
			return nil, fmt.Errorf("cannot restructure into %s: want And, Or or Not", k)
		}
		return Restructure{Kind: k}, nil
	}
	return nil, fmt.Errorf("unknown edit %q", name)
}

// ApplyEdit returns node with edit applied. Combinations outside the edit
// table leave node unchanged and return it as is. node itself is never
// modified; a changed node is always a fresh value.
func ApplyEdit(node Queryable, edit Edit) Queryable {
	if isNil(node) {
		return node
	}

	switch n := node.(type) {
	case *Filter:
		out := *n
		switch e := edit.(type) {
		case SetField:
			out.Field = e.Field
		case SetValue:
			out.Value = e.Value
		case SetComparison:
			out.Comparison = e.Comparison
		default:
			return node
		}
		return &out

	case *And:
		return restructureBinary(node, n.Left, n.Right, edit)

	case *Or:
		return restructureBinary(node, n.Left, n.Right, edit)

	case *Not:
		e, ok := edit.(Restructure)
		if !ok {
			return node
		}
		switch e.Kind {
		case KindAnd:
			return &And{Left: n.Query, Right: CloneQuery(n.Query)}
		case KindOr:
			return &Or{Left: n.Query, Right: CloneQuery(n.Query)}
		}
		return node

	case *Duration:
		out := *n
		switch e := edit.(type) {
		case SetComparison:
			out.Comparison = e.Comparison
		case SetDuration:
			out.Days = e.Days
		default:
			return node
		}
		return &out
	}

	return node
}

// restructureBinary handles Restructure on And and Or. Turning either into
// Not keeps the left child and drops the right.
func restructureBinary(node Queryable, left, right Query, edit Edit) Queryable {
	e, ok := edit.(Restructure)
	if !ok {
		return node
	}
	switch e.Kind {
	case KindAnd:
		return &And{Left: left, Right: right}
	case KindOr:
		return &Or{Left: left, Right: right}
	case KindNot:
		return &Not{Query: left}
	}
	return node
}

// Mutate applies edit to the node addressed by path and returns the new
// root. An invalid path is logged and root is returned unchanged.
//
// Only the ancestors of the edited node are rebuilt. Untouched siblings are
// shared between the old and new trees.
func Mutate(path Path, edit Edit, root Queryable) Queryable {
	if _, err := Locate(path, root); err != nil {
		slog.Warn("query edit ignored", "edit", edit, "error", err)
		return root
	}
	return rebuild(root, path, edit)
}

func rebuild(node Queryable, path Path, edit Edit) Queryable {
	if len(path) == 0 {
		return ApplyEdit(node, edit)
	}

	seg, rest := path[0], path[1:]
	switch n := node.(type) {
	case *And:
		if seg == Left {
			return &And{Left: rebuildQuery(n.Left, rest, edit), Right: n.Right}
		}
		return &And{Left: n.Left, Right: rebuildQuery(n.Right, rest, edit)}
	case *Or:
		if seg == Left {
			return &Or{Left: rebuildQuery(n.Left, rest, edit), Right: n.Right}
		}
		return &Or{Left: n.Left, Right: rebuildQuery(n.Right, rest, edit)}
	case *Not:
		return &Not{Query: rebuildQuery(n.Query, rest, edit)}
	case *Duration:
		return &Duration{Comparison: n.Comparison, Days: n.Days, Query: rebuildQuery(n.Query, rest, edit)}
	}
	return node
}

// rebuildQuery rebuilds a child slot. Edits on a Query always yield a
// Query; the fallback keeps the old child if that ever stops being true.
func rebuildQuery(q Query, path Path, edit Edit) Query {
	if out, ok := rebuild(q, path, edit).(Query); ok {
		return out
	}
	return q
}
