package query

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/roach88/dayquery/internal/journal"
)

// ErrNotBoolean is returned when a Duration appears where only Filter, And,
// Or or Not may.
var ErrNotBoolean = errors.New("duration is only allowed at the root")

// Node is the tagged wire form of a tree, shared by the JSON codec and the
// YAML scenario format.
type Node struct {
	Kind       Kind          `json:"kind" yaml:"kind"`
	Comparison *Comparison   `json:"comparison,omitempty" yaml:"comparison,omitempty"`
	Field      journal.Field `json:"field,omitempty" yaml:"field,omitempty"`
	Value      int           `json:"value,omitempty" yaml:"value,omitempty"`
	Days       *int          `json:"days,omitempty" yaml:"days,omitempty"`
	Left       *Node         `json:"left,omitempty" yaml:"left,omitempty"`
	Right      *Node         `json:"right,omitempty" yaml:"right,omitempty"`
	Query      *Node         `json:"query,omitempty" yaml:"query,omitempty"`
}

// ToNode converts a tree to its wire form.
func ToNode(q Queryable) *Node {
	if isNil(q) {
		return nil
	}
	switch n := q.(type) {
	case *Filter:
		cmp := n.Comparison
		return &Node{Kind: KindFilter, Comparison: &cmp, Field: n.Field, Value: int(n.Value)}
	case *And:
		return &Node{Kind: KindAnd, Left: ToNode(n.Left), Right: ToNode(n.Right)}
	case *Or:
		return &Node{Kind: KindOr, Left: ToNode(n.Left), Right: ToNode(n.Right)}
	case *Not:
		return &Node{Kind: KindNot, Query: ToNode(n.Query)}
	case *Duration:
		cmp, days := n.Comparison, n.Days
		return &Node{Kind: KindDuration, Comparison: &cmp, Days: &days, Query: ToNode(n.Query)}
	}
	return nil
}

// FromNode converts a wire node back to a tree and validates it.
func FromNode(n *Node) (Queryable, error) {
	q, err := fromNode(n, "$", true)
	if err != nil {
		return nil, err
	}
	if err := Validate(q); err != nil {
		return nil, err
	}
	return q, nil
}

func fromNode(n *Node, at string, root bool) (Queryable, error) {
	if n == nil {
		return nil, fmt.Errorf("%s: missing node", at)
	}

	switch n.Kind {
	case KindFilter:
		if n.Comparison == nil {
			return nil, fmt.Errorf("%s: filter needs a comparison", at)
		}
		return &Filter{Comparison: *n.Comparison, Field: n.Field, Value: journal.Rating(n.Value)}, nil

	case KindAnd, KindOr:
		left, err := fromQueryNode(n.Left, at+".left")
		if err != nil {
			return nil, err
		}
		right, err := fromQueryNode(n.Right, at+".right")
		if err != nil {
			return nil, err
		}
		if n.Kind == KindAnd {
			return &And{Left: left, Right: right}, nil
		}
		return &Or{Left: left, Right: right}, nil

	case KindNot:
		inner, err := fromQueryNode(n.Query, at+".query")
		if err != nil {
			return nil, err
		}
		return &Not{Query: inner}, nil

	case KindDuration:
		if !root {
			return nil, fmt.Errorf("%s: %w", at, ErrNotBoolean)
		}
		if n.Comparison == nil || n.Days == nil {
			return nil, fmt.Errorf("%s: duration needs comparison and days", at)
		}
		inner, err := fromQueryNode(n.Query, at+".query")
		if err != nil {
			return nil, err
		}
		return &Duration{Comparison: *n.Comparison, Days: *n.Days, Query: inner}, nil
	}

	return nil, fmt.Errorf("%s: %w: %q", at, ErrUnknownKind, n.Kind)
}

func fromQueryNode(n *Node, at string) (Query, error) {
	q, err := fromNode(n, at, false)
	if err != nil {
		return nil, err
	}
	return q.(Query), nil
}

// Encode serializes q as JSON.
func Encode(q Queryable) ([]byte, error) {
	if isNil(q) {
		return nil, errors.New("encode: nil query")
	}
	return json.Marshal(ToNode(q))
}

// Decode parses JSON produced by Encode.
func Decode(data []byte) (Queryable, error) {
	var n Node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("decode query: %w", err)
	}
	q, err := FromNode(&n)
	if err != nil {
		return nil, fmt.Errorf("decode query: %w", err)
	}
	return q, nil
}
