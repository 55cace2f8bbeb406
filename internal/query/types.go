package query

import (
	"fmt"

	"github.com/roach88/dayquery/internal/journal"
)

// Kind names a node variant.
type Kind string

const (
	KindFilter   Kind = "Filter"
	KindAnd      Kind = "And"
	KindOr       Kind = "Or"
	KindNot      Kind = "Not"
	KindDuration Kind = "Duration"
)

// CombineKinds are the kinds a Restructure edit may target.
var CombineKinds = []Kind{KindAnd, KindOr, KindNot}

// IsCombine reports whether k is one of CombineKinds.
func (k Kind) IsCombine() bool {
	return k == KindAnd || k == KindOr || k == KindNot
}

// ParseKind parses a node kind name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindFilter, KindAnd, KindOr, KindNot, KindDuration:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Queryable is any node that can sit in the top-level query list.
//
// This is a sealed interface - only types in this package implement it.
type Queryable interface {
	fmt.Stringer
	Kind() Kind
	queryableNode()
}

// Query is the boolean subset of Queryable: Filter, And, Or and Not.
type Query interface {
	Queryable
	queryNode()
}

// Filter matches a record when Comparison(record[Field], Value) holds.
type Filter struct {
	Comparison Comparison
	Field      journal.Field
	Value      journal.Rating
}

// And keeps days matched by both children.
type And struct {
	Left  Query
	Right Query
}

// Or keeps days matched by either child, left first.
type Or struct {
	Left  Query
	Right Query
}

// Not keeps days its child does not match.
type Not struct {
	Query Query
}

// Duration selects runs of consecutive days on which Query holds, keeping
// runs whose length compares to Days by Comparison.
type Duration struct {
	Comparison Comparison
	Days       int
	Query      Query
}

func (*Filter) queryableNode()   {}
func (*And) queryableNode()      {}
func (*Or) queryableNode()       {}
func (*Not) queryableNode()      {}
func (*Duration) queryableNode() {}

func (*Filter) queryNode() {}
func (*And) queryNode()    {}
func (*Or) queryNode()     {}
func (*Not) queryNode()    {}

func (*Filter) Kind() Kind   { return KindFilter }
func (*And) Kind() Kind      { return KindAnd }
func (*Or) Kind() Kind       { return KindOr }
func (*Not) Kind() Kind      { return KindNot }
func (*Duration) Kind() Kind { return KindDuration }

func (f *Filter) String() string   { return String(f) }
func (a *And) String() string      { return String(a) }
func (o *Or) String() string       { return String(o) }
func (n *Not) String() string      { return String(n) }
func (d *Duration) String() string { return String(d) }

// NewFilterOf builds a Filter. Argument order follows how filters read:
// "anxiety MoreThan 2".
func NewFilterOf(field journal.Field, cmp Comparison, value journal.Rating) *Filter {
	return &Filter{Comparison: cmp, Field: field, Value: value}
}

// NewAnd builds an And node.
func NewAnd(left, right Query) *And {
	return &And{Left: left, Right: right}
}

// NewOr builds an Or node.
func NewOr(left, right Query) *Or {
	return &Or{Left: left, Right: right}
}

// NewNot builds a Not node.
func NewNot(q Query) *Not {
	return &Not{Query: q}
}

// NewDurationOf builds a Duration node.
func NewDurationOf(cmp Comparison, days int, q Query) *Duration {
	return &Duration{Comparison: cmp, Days: days, Query: q}
}

// NewFilter returns the default filter new list entries start from:
// EqualTo 1 on the first field.
func NewFilter() *Filter {
	return &Filter{
		Comparison: EqualTo,
		Field:      journal.DefaultField(),
		Value:      journal.RatingNone,
	}
}

// NewDuration returns the default duration query: exactly one day on which
// the default filter holds.
func NewDuration() *Duration {
	return &Duration{
		Comparison: EqualTo,
		Days:       1,
		Query:      NewFilter(),
	}
}

// Clone returns a deep copy of q. A nil q yields nil.
func Clone(q Queryable) Queryable {
	switch n := q.(type) {
	case *Filter:
		if n == nil {
			return nil
		}
		c := *n
		return &c
	case *And:
		if n == nil {
			return nil
		}
		return &And{Left: CloneQuery(n.Left), Right: CloneQuery(n.Right)}
	case *Or:
		if n == nil {
			return nil
		}
		return &Or{Left: CloneQuery(n.Left), Right: CloneQuery(n.Right)}
	case *Not:
		if n == nil {
			return nil
		}
		return &Not{Query: CloneQuery(n.Query)}
	case *Duration:
		if n == nil {
			return nil
		}
		return &Duration{Comparison: n.Comparison, Days: n.Days, Query: CloneQuery(n.Query)}
	default:
		return nil
	}
}

// CloneQuery is Clone restricted to the boolean subset.
func CloneQuery(q Query) Query {
	if q == nil {
		return nil
	}
	c, _ := Clone(q).(Query)
	return c
}
